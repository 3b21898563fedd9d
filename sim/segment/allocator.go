// Package segment simulates variable-size segment allocation over a flat
// address space using first-fit placement and coalescing of freed blocks.
package segment

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidSize     = errors.New("invalid size")
	ErrSegmentExists   = errors.New("segment already allocated")
	ErrSegmentNotFound = errors.New("segment not found")
	ErrOutOfMemory     = errors.New("not enough free memory")
)

// Block is a contiguous address range [Start, Start+Size).
type Block struct {
	Start int
	Size  int
}

// End returns the first address past the block.
func (b Block) End() int {
	return b.Start + b.Size
}

// Segment is an allocated block with its owner id.
type Segment struct {
	ID string
	Block
}

// Allocator manages a memory of fixed size. Not safe for concurrent use.
type Allocator struct {
	size      int
	free      []Block // sorted by Start, never adjacent
	allocated map[string]Block
}

// NewAllocator creates an allocator whose whole range is free.
func NewAllocator(size int) (*Allocator, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: memory size must be positive, got %d", ErrInvalidSize, size)
	}
	return &Allocator{
		size:      size,
		free:      []Block{{Start: 0, Size: size}},
		allocated: make(map[string]Block),
	}, nil
}

// Size returns the total memory size.
func (a *Allocator) Size() int {
	return a.size
}

// Allocate places segment id in the first free block large enough to hold it
// and returns its start address.
func (a *Allocator) Allocate(id string, size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: segment %s size must be positive, got %d", ErrInvalidSize, id, size)
	}
	if _, ok := a.allocated[id]; ok {
		return 0, fmt.Errorf("%w: %s", ErrSegmentExists, id)
	}
	for i, b := range a.free {
		if b.Size < size {
			continue
		}
		if b.Size == size {
			a.free = append(a.free[:i], a.free[i+1:]...)
		} else {
			a.free[i] = Block{Start: b.Start + size, Size: b.Size - size}
		}
		a.allocated[id] = Block{Start: b.Start, Size: size}
		return b.Start, nil
	}
	return 0, fmt.Errorf("%w: segment %s needs %d units, largest free block is %d", ErrOutOfMemory, id, size, a.LargestFree())
}

// Deallocate frees segment id, merging it with adjacent free blocks.
func (a *Allocator) Deallocate(id string) (Block, error) {
	b, ok := a.allocated[id]
	if !ok {
		return Block{}, fmt.Errorf("%w: %s", ErrSegmentNotFound, id)
	}
	delete(a.allocated, id)
	a.free = mergeFree(append(a.free, b))
	return b, nil
}

// mergeFree sorts blocks by address and coalesces contiguous neighbors.
func mergeFree(blocks []Block) []Block {
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start < blocks[j].Start })
	merged := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if n := len(merged); n > 0 && merged[n-1].End() == b.Start {
			merged[n-1].Size += b.Size
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

// Segments returns the allocated segments ordered by address.
func (a *Allocator) Segments() []Segment {
	segs := make([]Segment, 0, len(a.allocated))
	for id, b := range a.allocated {
		segs = append(segs, Segment{ID: id, Block: b})
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].Start < segs[j].Start })
	return segs
}

// FreeBlocks returns a copy of the free list ordered by address.
func (a *Allocator) FreeBlocks() []Block {
	out := make([]Block, len(a.free))
	copy(out, a.free)
	return out
}

// FreeTotal returns the sum of all free block sizes.
func (a *Allocator) FreeTotal() int {
	total := 0
	for _, b := range a.free {
		total += b.Size
	}
	return total
}

// LargestFree returns the size of the largest free block.
func (a *Allocator) LargestFree() int {
	largest := 0
	for _, b := range a.free {
		largest = max(largest, b.Size)
	}
	return largest
}

// Fragmentation is 1 - largest/total free space: 0 when all free memory is
// one block, approaching 1 as it splinters. Returns 0 when nothing is free.
func (a *Allocator) Fragmentation() float64 {
	total := a.FreeTotal()
	if total == 0 {
		return 0
	}
	return 1 - float64(a.LargestFree())/float64(total)
}
