package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	sim "github.com/paging-sim/paging-sim/sim"
	"github.com/paging-sim/paging-sim/sim/analysis"
	"github.com/paging-sim/paging-sim/sim/trace"
)

// renderTable writes the frame-by-reference grid: one column per reference,
// one row per frame slot, '-' for empty slots and '*' under every fault.
func renderTable(w io.Writer, r *sim.SimulationResult) {
	width := 1
	for _, s := range r.Steps {
		width = max(width, len(strconv.Itoa(int(s.Reference))))
	}
	row := func(label string, cells []string) {
		var b strings.Builder
		fmt.Fprintf(&b, "%-10s|", label)
		for _, c := range cells {
			fmt.Fprintf(&b, " %*s", width, c)
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	_, _ = fmt.Fprintf(w, "=== %s (%d frames) ===\n", r.Algorithm, r.FrameCount)
	refs := make([]string, len(r.Steps))
	faults := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		refs[i] = strconv.Itoa(int(s.Reference))
		if s.Fault {
			faults[i] = "*"
		}
	}
	row("Reference", refs)
	for slot := 0; slot < r.FrameCount; slot++ {
		contents := r.Row(slot)
		cells := make([]string, len(contents))
		for i, c := range contents {
			cells[i] = c.String()
		}
		row(fmt.Sprintf("Frame %d", slot+1), cells)
	}
	row("Fault", faults)
	_, _ = fmt.Fprintf(w, "Total Page Faults: %d  Hits: %d  Fault Rate: %.2f%%\n",
		r.TotalFaults, r.Hits(), r.FaultRate()*100)
}

// renderSteps writes one line per reference in the form
// "After page 7: [7 - -] Fault".
func renderSteps(w io.Writer, r *sim.SimulationResult) {
	_, _ = fmt.Fprintf(w, "=== %s (%d frames) ===\n", r.Algorithm, r.FrameCount)
	for _, s := range r.Steps {
		outcome := "Hit"
		if s.Fault {
			outcome = "Fault"
		}
		line := fmt.Sprintf("After page %d: %s %s", s.Reference, sim.FormatSlots(s.Frames), outcome)
		if s.Evicted.Occupied {
			line += fmt.Sprintf(" (evicted %s)", s.Evicted)
		}
		_, _ = fmt.Fprintln(w, line)
	}
	_, _ = fmt.Fprintf(w, "Total Page Faults: %d\n", r.TotalFaults)
}

// renderComparison writes one row per algorithm and names the best.
func renderComparison(w io.Writer, results []*sim.SimulationResult) {
	if len(results) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "=== Algorithm Comparison (%d references, %d frames) ===\n",
		len(results[0].Steps), results[0].FrameCount)
	_, _ = fmt.Fprintf(w, "%-10s %6s %5s %11s\n", "Algorithm", "Faults", "Hits", "Fault Rate")
	for _, r := range results {
		_, _ = fmt.Fprintf(w, "%-10s %6d %5d %10.2f%%\n", r.Algorithm, r.TotalFaults, r.Hits(), r.FaultRate()*100)
	}
	best := analysis.Best(results)
	names := make([]string, len(best))
	for i, alg := range best {
		names[i] = alg.String()
	}
	_, _ = fmt.Fprintf(w, "Best: %s\n", strings.Join(names, ", "))
}

// printSweep writes fault counts per frame count and any Belady anomalies.
func printSweep(w io.Writer, report *analysis.SweepReport) {
	_, _ = fmt.Fprintln(w, "=== Frame Sweep ===")
	header := fmt.Sprintf("%6s", "Frames")
	for _, alg := range report.Algorithms {
		header += fmt.Sprintf(" %9s", alg)
	}
	_, _ = fmt.Fprintln(w, header)
	for _, p := range report.Points {
		line := fmt.Sprintf("%6d", p.Frames)
		for _, alg := range report.Algorithms {
			line += fmt.Sprintf(" %9d", p.Faults[alg])
		}
		_, _ = fmt.Fprintln(w, line)
	}

	anomalies := report.Anomalies()
	if len(anomalies) == 0 {
		_, _ = fmt.Fprintln(w, "No Belady anomalies detected.")
		return
	}
	_, _ = fmt.Fprintln(w, "Belady anomalies:")
	for _, a := range anomalies {
		_, _ = fmt.Fprintf(w, "  %s: %d faults at %d frames -> %d faults at %d frames\n",
			a.Algorithm, a.PrevFaults, a.Frames-1, a.Faults, a.Frames)
	}
}

// printTrials writes the per-algorithm fault distribution over all trials.
func printTrials(w io.Writer, report *analysis.TrialReport) {
	_, _ = fmt.Fprintf(w, "=== Trial Statistics (%d trials, %d frames) ===\n", report.Trials, report.FrameCount)
	for _, alg := range report.Algorithms {
		d := report.Faults[alg]
		_, _ = fmt.Fprintf(w, "%-10s mean=%.2f stddev=%.2f min=%.0f max=%.0f\n", alg, d.Mean, d.StdDev, d.Min, d.Max)
	}
}

// printTraceSummary writes the decision trace aggregate for one run.
func printTraceSummary(w io.Writer, alg sim.Algorithm, s *trace.TraceSummary) {
	_, _ = fmt.Fprintf(w, "=== Decision Trace: %s ===\n", alg)
	_, _ = fmt.Fprintf(w, "Total Faults: %d\n", s.TotalFaults)
	_, _ = fmt.Fprintf(w, "Cold Misses: %d\n", s.ColdMisses)
	_, _ = fmt.Fprintf(w, "Evictions: %d\n", s.Evictions)
	_, _ = fmt.Fprintf(w, "Unique Victims: %d\n", s.UniqueVictims)
	if len(s.VictimDistribution) == 0 {
		return
	}
	pages := make([]int, 0, len(s.VictimDistribution))
	for p := range s.VictimDistribution {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	_, _ = fmt.Fprintln(w, "Victims (page: evictions):")
	for _, p := range pages {
		_, _ = fmt.Fprintf(w, "  %d: %d\n", p, s.VictimDistribution[p])
	}
}
