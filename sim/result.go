package sim

// StepRecord is the frame state after one reference has been processed.
type StepRecord struct {
	Reference PageID `json:"reference" yaml:"reference" msgpack:"reference"`
	Frames    []Slot `json:"frames" yaml:"frames" msgpack:"frames"` // exactly FrameCount entries
	Fault     bool   `json:"fault" yaml:"fault" msgpack:"fault"`
	Evicted   Slot   `json:"evicted" yaml:"evicted" msgpack:"evicted"` // empty unless a resident page was replaced
}

// SimulationResult is the complete trace of one run.
// TotalFaults always equals the number of steps with Fault set.
type SimulationResult struct {
	Algorithm   Algorithm    `json:"algorithm" yaml:"algorithm" msgpack:"algorithm"`
	FrameCount  int          `json:"frame_count" yaml:"frame_count" msgpack:"frame_count"`
	Steps       []StepRecord `json:"steps" yaml:"steps" msgpack:"steps"`
	TotalFaults int          `json:"total_faults" yaml:"total_faults" msgpack:"total_faults"`
}

// Hits returns the number of references served without a fault.
func (r *SimulationResult) Hits() int {
	return len(r.Steps) - r.TotalFaults
}

// FaultRate returns TotalFaults / len(Steps), or 0 for an empty run.
func (r *SimulationResult) FaultRate() float64 {
	if len(r.Steps) == 0 {
		return 0
	}
	return float64(r.TotalFaults) / float64(len(r.Steps))
}

// References returns the input sequence the result was computed from.
func (r *SimulationResult) References() []PageID {
	refs := make([]PageID, len(r.Steps))
	for i, s := range r.Steps {
		refs[i] = s.Reference
	}
	return refs
}

// Row returns the contents of one frame slot across all steps,
// which is how the reporting table lays the trace out.
func (r *SimulationResult) Row(slot int) []Slot {
	row := make([]Slot, len(r.Steps))
	for i, s := range r.Steps {
		row[i] = s.Frames[slot]
	}
	return row
}
