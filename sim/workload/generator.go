package workload

import (
	"fmt"

	"github.com/paging-sim/paging-sim/sim"
)

// Generate creates a reference sequence from a ReferenceSpec.
// Deterministic given the same spec and seed.
func Generate(spec *ReferenceSpec) ([]sim.PageID, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reference spec: %w", err)
	}

	rng := NewPartitionedRNG(NewSimulationKey(spec.Seed))
	sampler := NewPageSampler(spec, rng)

	refs := make([]sim.PageID, spec.Length)
	for i := range refs {
		refs[i] = sampler.Sample(i)
	}
	return refs, nil
}
