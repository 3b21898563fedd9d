// Package trace provides eviction-decision recording for page-replacement runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EvictionRecord captures a single page fault and the replacement decision it triggered.
type EvictionRecord struct {
	Step      int    // index of the reference in the input sequence
	Page      int    // page that faulted
	Slot      int    // frame slot the page was loaded into
	HadVictim bool   // false for cold misses that filled a free frame
	Victim    int    // evicted page; meaningful only when HadVictim
	Reason    string // policy-specific explanation, e.g. "least recently used"
}
