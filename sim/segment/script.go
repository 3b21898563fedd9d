package segment

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ScriptResult counts what a script replay did.
type ScriptResult struct {
	Commands    int
	Allocated   int
	Deallocated int
	Failed      int
}

// RunScript replays allocator commands read from r, one per line:
//
//	allocate <id> <size>
//	deallocate <id>
//	show
//	exit
//
// Blank lines and lines starting with '#' are skipped. A failed command is
// reported to w and the replay continues; only read errors abort it.
func RunScript(r io.Reader, a *Allocator, w io.Writer) (*ScriptResult, error) {
	res := &ScriptResult{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		cmd := strings.ToLower(fields[0])
		res.Commands++

		switch cmd {
		case "allocate":
			if len(fields) != 3 {
				res.Failed++
				_, _ = fmt.Fprintf(w, "line %d: usage: allocate <id> <size>\n", lineNo)
				continue
			}
			size, err := strconv.Atoi(fields[2])
			if err != nil {
				res.Failed++
				_, _ = fmt.Fprintf(w, "line %d: size %q is not an integer\n", lineNo, fields[2])
				continue
			}
			start, err := a.Allocate(fields[1], size)
			if err != nil {
				res.Failed++
				_, _ = fmt.Fprintf(w, "line %d: allocate failed: %v\n", lineNo, err)
				continue
			}
			res.Allocated++
			_, _ = fmt.Fprintf(w, "allocated segment %s at %d (size %d)\n", fields[1], start, size)
		case "deallocate":
			if len(fields) != 2 {
				res.Failed++
				_, _ = fmt.Fprintf(w, "line %d: usage: deallocate <id>\n", lineNo)
				continue
			}
			b, err := a.Deallocate(fields[1])
			if err != nil {
				res.Failed++
				_, _ = fmt.Fprintf(w, "line %d: deallocate failed: %v\n", lineNo, err)
				continue
			}
			res.Deallocated++
			_, _ = fmt.Fprintf(w, "deallocated segment %s from %d (size %d)\n", fields[1], b.Start, b.Size)
		case "show":
			PrintLayout(w, a)
		case "exit":
			return res, nil
		default:
			res.Failed++
			logrus.Warnf("segment script line %d: unknown command %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("reading segment script: %w", err)
	}
	return res, nil
}

// PrintLayout writes the allocated segments, the free list, and a memory bar.
func PrintLayout(w io.Writer, a *Allocator) {
	_, _ = fmt.Fprintln(w, "Allocated segments:")
	segs := a.Segments()
	if len(segs) == 0 {
		_, _ = fmt.Fprintln(w, "  (none)")
	}
	for _, s := range segs {
		_, _ = fmt.Fprintf(w, "  %-8s start=%-6d size=%d\n", s.ID, s.Start, s.Size)
	}
	_, _ = fmt.Fprintln(w, "Free blocks:")
	free := a.FreeBlocks()
	if len(free) == 0 {
		_, _ = fmt.Fprintln(w, "  (none)")
	}
	for _, b := range free {
		_, _ = fmt.Fprintf(w, "  start=%-6d size=%d\n", b.Start, b.Size)
	}
	_, _ = fmt.Fprintf(w, "Memory: |%s| free=%d fragmentation=%.2f\n", MemoryBar(a, 40), a.FreeTotal(), a.Fragmentation())
}

// MemoryBar renders memory as width cells: '.' for free, and the first
// character of the owning segment id for allocated cells. A cell takes the
// owner of its first address.
func MemoryBar(a *Allocator, width int) string {
	if width <= 0 {
		return ""
	}
	cells := make([]byte, width)
	for i := range cells {
		cells[i] = '.'
	}
	for _, s := range a.Segments() {
		mark := s.ID[0]
		for i := range cells {
			addr := i * a.size / width
			if addr >= s.Start && addr < s.End() {
				cells[i] = mark
			}
		}
	}
	return string(cells)
}
