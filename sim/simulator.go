// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/paging-sim/paging-sim/sim/trace"
)

// replacer chooses eviction victims for one run. It owns all auxiliary
// eviction state and is discarded when the run completes.
type replacer interface {
	// touch records a hit on an occupied slot.
	touch(slot int)
	// admit records that slot now holds a freshly loaded page.
	admit(slot int)
	// victim returns the slot to evict and a human-readable reason.
	// Called only when every slot is occupied; step is the index of the faulting reference.
	victim(step int) (int, string)
}

type replacerFactory func(frames *frameSet, refs []PageID) replacer

// simulate drives the shared reference loop. Policies differ only in the replacer.
func simulate(alg Algorithm, refs []PageID, frameCount int, newReplacer replacerFactory, st *trace.SimulationTrace) (*SimulationResult, error) {
	if frameCount <= 0 {
		return nil, fmt.Errorf("%w: frame count must be at least 1, got %d", ErrInvalidConfiguration, frameCount)
	}

	frames := newFrameSet(frameCount)
	policy := newReplacer(frames, refs)
	result := &SimulationResult{
		Algorithm:  alg,
		FrameCount: frameCount,
		Steps:      make([]StepRecord, 0, len(refs)),
	}

	for step, page := range refs {
		record := StepRecord{Reference: page}

		if slot, ok := frames.lookup(page); ok {
			policy.touch(slot)
		} else {
			record.Fault = true
			result.TotalFaults++

			reason := "free frame"
			slot, ok := frames.free()
			if !ok {
				slot, reason = policy.victim(step)
			}
			prev := frames.place(slot, page)
			policy.admit(slot)
			if prev.Occupied {
				record.Evicted = prev
				logrus.Debugf("[%s step %d] page %d evicts %d from slot %d (%s)", alg, step, page, prev.Page, slot, reason)
			}

			if st.Enabled() {
				st.RecordFault(trace.EvictionRecord{
					Step:      step,
					Page:      int(page),
					Slot:      slot,
					HadVictim: prev.Occupied,
					Victim:    int(prev.Page),
					Reason:    reason,
				})
			}
		}

		record.Frames = frames.snapshot()
		result.Steps = append(result.Steps, record)
	}

	return result, nil
}
