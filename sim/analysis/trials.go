package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/paging-sim/paging-sim/sim"
	"github.com/paging-sim/paging-sim/sim/workload"
)

// Distribution summarizes fault counts across trials.
type Distribution struct {
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for fewer than two trials
	Min    float64
	Max    float64
	Count  int
}

// TrialStats computes a Distribution over per-trial fault counts.
func TrialStats(counts []int) Distribution {
	if len(counts) == 0 {
		return Distribution{}
	}
	xs := make([]float64, len(counts))
	for i, c := range counts {
		xs[i] = float64(c)
	}
	d := Distribution{
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
		Count: len(xs),
	}
	if len(xs) == 1 {
		d.Mean = xs[0]
		return d
	}
	d.Mean, d.StdDev = stat.MeanStdDev(xs, nil)
	return d
}

// TrialReport aggregates fault counts per algorithm over independent trials.
type TrialReport struct {
	Trials     int
	FrameCount int
	Algorithms []sim.Algorithm
	Faults     map[sim.Algorithm]Distribution
	Raw        map[sim.Algorithm][]int
}

// RunTrials generates trials reference sequences from spec, using seeds
// spec.Seed, spec.Seed+1, ..., and simulates every algorithm on each.
// spec is not modified.
func RunTrials(spec *workload.ReferenceSpec, trials, frameCount int, algs []sim.Algorithm) (*TrialReport, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", trials)
	}
	report := &TrialReport{
		Trials:     trials,
		FrameCount: frameCount,
		Algorithms: algs,
		Faults:     make(map[sim.Algorithm]Distribution, len(algs)),
		Raw:        make(map[sim.Algorithm][]int, len(algs)),
	}
	for i := 0; i < trials; i++ {
		trialSpec := *spec
		trialSpec.Seed = spec.Seed + int64(i)
		refs, err := workload.Generate(&trialSpec)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		results, err := Compare(refs, frameCount, algs)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		for _, r := range results {
			report.Raw[r.Algorithm] = append(report.Raw[r.Algorithm], r.TotalFaults)
		}
	}
	for _, alg := range algs {
		report.Faults[alg] = TrialStats(report.Raw[alg])
	}
	return report, nil
}
