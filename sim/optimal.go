package sim

import (
	"fmt"
	"math"
)

// optimalReplacer is Belady's clairvoyant policy. It keeps no state between
// faults; each eviction rescans the not-yet-processed references, so a run
// costs O(steps² × frames). Fine for classroom-sized traces only.
type optimalReplacer struct {
	frames *frameSet
	refs   []PageID
}

func newOptimalReplacer(frames *frameSet, refs []PageID) replacer {
	return &optimalReplacer{frames: frames, refs: refs}
}

func (o *optimalReplacer) touch(int) {}

func (o *optimalReplacer) admit(int) {}

// victim picks the resident page used farthest in the future. Pages never
// used again count as infinitely far; ties go to the lowest slot.
func (o *optimalReplacer) victim(step int) (int, string) {
	victim, farthest := 0, -1
	for slot, s := range o.frames.slots {
		next := o.nextUse(s.Page, step+1)
		if next > farthest {
			victim, farthest = slot, next
		}
	}
	if farthest == math.MaxInt {
		return victim, "never used again"
	}
	return victim, fmt.Sprintf("next use at step %d", farthest)
}

// nextUse returns the index of the first occurrence of page at or after from,
// or math.MaxInt if there is none.
func (o *optimalReplacer) nextUse(page PageID, from int) int {
	for i := from; i < len(o.refs); i++ {
		if o.refs[i] == page {
			return i
		}
	}
	return math.MaxInt
}
