package sim

import (
	"strconv"
	"strings"
)

// PageID identifies a virtual page in a reference sequence.
type PageID int

// Slot is one resident-page frame. An empty slot is a distinct state,
// never a reserved PageID value.
type Slot struct {
	Page     PageID `json:"page" yaml:"page" msgpack:"page"`
	Occupied bool   `json:"occupied" yaml:"occupied" msgpack:"occupied"`
}

// EmptySlot returns an unoccupied slot.
func EmptySlot() Slot {
	return Slot{}
}

// Holding returns a slot occupied by page.
func Holding(page PageID) Slot {
	return Slot{Page: page, Occupied: true}
}

// String renders the page number, or "-" for an empty slot.
func (s Slot) String() string {
	if !s.Occupied {
		return "-"
	}
	return strconv.Itoa(int(s.Page))
}

// FormatSlots renders slots as "[1 2 -]".
func FormatSlots(slots []Slot) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// frameSet is the mutable frame pool of a single run.
// Slots are filled in order and never emptied once occupied.
type frameSet struct {
	slots    []Slot
	resident map[PageID]int // page → slot index
	used     int
}

func newFrameSet(frameCount int) *frameSet {
	return &frameSet{
		slots:    make([]Slot, frameCount),
		resident: make(map[PageID]int, frameCount),
	}
}

// lookup returns the slot holding page, if resident.
func (f *frameSet) lookup(page PageID) (int, bool) {
	slot, ok := f.resident[page]
	return slot, ok
}

// free returns the lowest empty slot, or false when the pool is full.
func (f *frameSet) free() (int, bool) {
	if f.used < len(f.slots) {
		return f.used, true
	}
	return 0, false
}

// place loads page into slot and returns the slot's previous contents.
func (f *frameSet) place(slot int, page PageID) Slot {
	prev := f.slots[slot]
	if prev.Occupied {
		delete(f.resident, prev.Page)
	} else {
		f.used++
	}
	f.slots[slot] = Holding(page)
	f.resident[page] = slot
	return prev
}

// snapshot copies the current slots; the copy is never aliased with live state.
func (f *frameSet) snapshot() []Slot {
	out := make([]Slot, len(f.slots))
	copy(out, f.slots)
	return out
}
