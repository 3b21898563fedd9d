package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalFaults != 0 || summary.Evictions != 0 || summary.ColdMisses != 0 {
		t.Errorf("expected zero counts, got %+v", summary)
	}
	if summary.VictimDistribution == nil {
		t.Error("expected non-nil victim distribution")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalFaults != 0 {
		t.Errorf("expected 0 faults, got %d", summary.TotalFaults)
	}
	if summary.UniqueVictims != 0 {
		t.Errorf("expected 0 unique victims, got %d", summary.UniqueVictims)
	}
	if len(summary.VictimDistribution) != 0 {
		t.Error("expected empty victim distribution")
	}
}

func TestSummarize_PopulatedTrace_SeparatesColdMissesFromEvictions(t *testing.T) {
	// GIVEN a trace with two cold misses and three evictions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})
	st.RecordFault(EvictionRecord{Step: 0, Page: 1, Slot: 0})
	st.RecordFault(EvictionRecord{Step: 1, Page: 2, Slot: 1})
	st.RecordFault(EvictionRecord{Step: 2, Page: 3, Slot: 0, HadVictim: true, Victim: 1})
	st.RecordFault(EvictionRecord{Step: 3, Page: 1, Slot: 1, HadVictim: true, Victim: 2})
	st.RecordFault(EvictionRecord{Step: 4, Page: 2, Slot: 1, HadVictim: true, Victim: 1})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalFaults != 5 {
		t.Errorf("expected 5 faults, got %d", summary.TotalFaults)
	}
	if summary.ColdMisses != 2 {
		t.Errorf("expected 2 cold misses, got %d", summary.ColdMisses)
	}
	if summary.Evictions != 3 {
		t.Errorf("expected 3 evictions, got %d", summary.Evictions)
	}
	if summary.UniqueVictims != 2 {
		t.Errorf("expected 2 unique victims, got %d", summary.UniqueVictims)
	}
	if summary.VictimDistribution[1] != 2 {
		t.Errorf("expected page 1 evicted twice, got %d", summary.VictimDistribution[1])
	}
	if summary.VictimDistribution[2] != 1 {
		t.Errorf("expected page 2 evicted once, got %d", summary.VictimDistribution[2])
	}
}
