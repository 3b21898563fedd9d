package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paging-sim/paging-sim/sim/workload"
)

// syntheticOptions selects a synthetic reference spec, either from a YAML
// file or from a named built-in workload.
type syntheticOptions struct {
	specPath string
	name     string
	seed     int64
	length   int
	pages    int
}

func (o *syntheticOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.specPath, "spec", "", "Path to a reference spec YAML (overrides --workload)")
	cmd.Flags().StringVar(&o.name, "workload", "hot-set", "Built-in workload (hot-set, loop, random, skewed)")
	cmd.Flags().Int64Var(&o.seed, "seed", 42, "Seed for reference generation")
	cmd.Flags().IntVar(&o.length, "length", 100, "Number of references to generate")
	cmd.Flags().IntVar(&o.pages, "pages", 16, "Number of distinct pages")
}

// referenceSpec resolves the options into a validated spec.
func (o *syntheticOptions) referenceSpec() (*workload.ReferenceSpec, error) {
	var (
		spec *workload.ReferenceSpec
		err  error
	)
	if o.specPath != "" {
		spec, err = workload.LoadReferenceSpec(o.specPath)
	} else {
		spec, err = workload.NewScenario(o.name, o.seed, o.length, o.pages)
	}
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}
