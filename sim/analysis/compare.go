package analysis

import (
	"fmt"

	"github.com/paging-sim/paging-sim/sim"
)

// Compare runs every algorithm in algs over the same input.
// Results are returned in the order of algs.
func Compare(refs []sim.PageID, frameCount int, algs []sim.Algorithm) ([]*sim.SimulationResult, error) {
	results := make([]*sim.SimulationResult, 0, len(algs))
	for _, alg := range algs {
		r, err := sim.Simulate(alg, refs, frameCount)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alg, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// Best returns the algorithms with the fewest faults, in input order.
func Best(results []*sim.SimulationResult) []sim.Algorithm {
	var best []sim.Algorithm
	minFaults := -1
	for _, r := range results {
		switch {
		case minFaults < 0 || r.TotalFaults < minFaults:
			minFaults = r.TotalFaults
			best = []sim.Algorithm{r.Algorithm}
		case r.TotalFaults == minFaults:
			best = append(best, r.Algorithm)
		}
	}
	return best
}
