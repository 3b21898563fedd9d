package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalFaults        int
	ColdMisses         int
	Evictions          int
	UniqueVictims      int
	VictimDistribution map[int]int // page → number of times it was evicted
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		VictimDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalFaults = len(st.Faults)
	for _, f := range st.Faults {
		if !f.HadVictim {
			summary.ColdMisses++
			continue
		}
		summary.Evictions++
		summary.VictimDistribution[f.Victim]++
	}

	summary.UniqueVictims = len(summary.VictimDistribution)

	return summary
}
