package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/paging-sim/paging-sim/sim"
	"github.com/paging-sim/paging-sim/sim/analysis"
	"github.com/paging-sim/paging-sim/sim/trace"
)

func mustSimulate(t *testing.T, alg sim.Algorithm, refs []sim.PageID, frames int) *sim.SimulationResult {
	t.Helper()
	r, err := sim.Simulate(alg, refs, frames)
	require.NoError(t, err)
	return r
}

func TestRenderTable_LaysOutFramesByReference(t *testing.T) {
	// GIVEN a FIFO run of 1,2,1 with two frames
	r := mustSimulate(t, sim.FIFO, []sim.PageID{1, 2, 1}, 2)
	var buf bytes.Buffer

	// WHEN the table is rendered
	renderTable(&buf, r)

	// THEN each frame is a row, empty slots are '-' and faults are starred
	want := strings.Join([]string{
		"=== FIFO (2 frames) ===",
		"Reference | 1 2 1",
		"Frame 1   | 1 1 1",
		"Frame 2   | - 2 2",
		"Fault     | * *",
		"Total Page Faults: 2  Hits: 1  Fault Rate: 66.67%",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRenderTable_WidePageNumbers_AlignColumns(t *testing.T) {
	r := mustSimulate(t, sim.LRU, []sim.PageID{10, 2}, 1)
	var buf bytes.Buffer

	renderTable(&buf, r)

	assert.Contains(t, buf.String(), "Reference | 10  2\n")
	assert.Contains(t, buf.String(), "Frame 1   | 10  2\n")
}

func TestRenderTable_EmptyRun_PrintsZeroSummary(t *testing.T) {
	r := mustSimulate(t, sim.Clock, nil, 2)
	var buf bytes.Buffer

	renderTable(&buf, r)

	assert.Contains(t, buf.String(), "Total Page Faults: 0  Hits: 0  Fault Rate: 0.00%")
}

func TestRenderSteps_OneLinePerReference(t *testing.T) {
	r := mustSimulate(t, sim.FIFO, []sim.PageID{1, 2, 3}, 2)
	var buf bytes.Buffer

	renderSteps(&buf, r)

	output := buf.String()
	assert.Contains(t, output, "After page 1: [1 -] Fault\n")
	assert.Contains(t, output, "After page 2: [1 2] Fault\n")
	assert.Contains(t, output, "After page 3: [3 2] Fault (evicted 1)\n")
	assert.Contains(t, output, "Total Page Faults: 3\n")
}

func TestRenderComparison_DefaultSequence_OptimalBest(t *testing.T) {
	// GIVEN all four algorithms over the default sequence with 3 frames
	results, err := analysis.Compare(defaultReferences, 3, sim.AllAlgorithms())
	require.NoError(t, err)
	var buf bytes.Buffer

	// WHEN the comparison is rendered
	renderComparison(&buf, results)

	// THEN every algorithm has a row and Optimal is reported best
	output := buf.String()
	assert.Contains(t, output, "=== Algorithm Comparison (13 references, 3 frames) ===")
	assert.Contains(t, output, "FIFO           10     3      76.92%")
	assert.Contains(t, output, "LRU             9     4      69.23%")
	assert.Contains(t, output, "Optimal         7     6      53.85%")
	assert.Contains(t, output, "Clock           9     4      69.23%")
	assert.Contains(t, output, "Best: Optimal\n")
}

func TestRenderComparison_NoResults_NoOutput(t *testing.T) {
	var buf bytes.Buffer
	renderComparison(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestPrintSweep_BeladySequence_ReportsFIFOAnomaly(t *testing.T) {
	refs := []sim.PageID{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}
	report, err := analysis.Sweep(refs, []sim.Algorithm{sim.FIFO, sim.LRU}, 3, 4)
	require.NoError(t, err)
	var buf bytes.Buffer

	printSweep(&buf, report)

	output := buf.String()
	assert.Contains(t, output, "Frames      FIFO       LRU")
	assert.Contains(t, output, "     3         9        10")
	assert.Contains(t, output, "     4        10         8")
	assert.Contains(t, output, "FIFO: 9 faults at 3 frames -> 10 faults at 4 frames")
	assert.NotContains(t, output, "LRU:")
}

func TestPrintSweep_NoAnomaly(t *testing.T) {
	report, err := analysis.Sweep(defaultReferences, []sim.Algorithm{sim.LRU}, 1, 4)
	require.NoError(t, err)
	var buf bytes.Buffer

	printSweep(&buf, report)

	assert.Contains(t, buf.String(), "No Belady anomalies detected.")
}

func TestPrintTrials_OneLinePerAlgorithm(t *testing.T) {
	report := &analysis.TrialReport{
		Trials:     3,
		FrameCount: 4,
		Algorithms: []sim.Algorithm{sim.LRU, sim.FIFO},
		Faults: map[sim.Algorithm]analysis.Distribution{
			sim.LRU:  {Mean: 10, StdDev: 1.5, Min: 8, Max: 12, Count: 3},
			sim.FIFO: {Mean: 11.25, StdDev: 0, Min: 11, Max: 11, Count: 3},
		},
	}
	var buf bytes.Buffer

	printTrials(&buf, report)

	output := buf.String()
	assert.Contains(t, output, "=== Trial Statistics (3 trials, 4 frames) ===")
	assert.Contains(t, output, "LRU        mean=10.00 stddev=1.50 min=8 max=12")
	assert.Contains(t, output, "FIFO       mean=11.25 stddev=0.00 min=11 max=11")
	assert.Less(t, strings.Index(output, "LRU"), strings.Index(output, "FIFO"), "rows follow report order")
}

func TestPrintTraceSummary_VictimsSortedByPage(t *testing.T) {
	summary := &trace.TraceSummary{
		TotalFaults: 5, ColdMisses: 2, Evictions: 3, UniqueVictims: 2,
		VictimDistribution: map[int]int{7: 1, 3: 2},
	}
	var buf bytes.Buffer

	printTraceSummary(&buf, sim.LRU, summary)

	output := buf.String()
	assert.Contains(t, output, "=== Decision Trace: LRU ===")
	assert.Contains(t, output, "Cold Misses: 2")
	assert.Contains(t, output, "Victims (page: evictions):\n  3: 2\n  7: 1\n")
}

func TestPrintTraceSummary_NoEvictions_OmitsVictims(t *testing.T) {
	var buf bytes.Buffer
	printTraceSummary(&buf, sim.FIFO, trace.Summarize(nil))
	assert.NotContains(t, buf.String(), "Victims")
}
