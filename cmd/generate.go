package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/paging-sim/paging-sim/sim"
	"github.com/paging-sim/paging-sim/sim/workload"
)

var (
	generateSynth syntheticOptions
	generateOut   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic reference sequence as YAML",
	Long:  "Generate page references from a reference spec or a built-in workload. Output is written to stdout for piping into `run --refs-file`.",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := generateSynth.referenceSpec()
		if err != nil {
			logrus.Fatalf("Invalid workload: %v", err)
		}
		refs, err := workload.Generate(spec)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
		logrus.Infof("Generated %d references over %d pages (%s, seed %d)", len(refs), spec.PageCount, spec.Pattern, spec.Seed)

		if generateOut == "" {
			writeReferenceSet(os.Stdout, spec, refs)
			return
		}
		file, err := os.Create(generateOut)
		if err != nil {
			logrus.Fatalf("Failed to create %s: %v", generateOut, err)
		}
		defer func() { _ = file.Close() }()
		writeReferenceSet(file, spec, refs)
	},
}

// writeReferenceSet marshals the generated references to YAML and writes them to w.
func writeReferenceSet(w io.Writer, spec *workload.ReferenceSpec, refs []sim.PageID) {
	data, err := workload.MarshalReferenceSet(spec, refs)
	if err != nil {
		logrus.Fatalf("YAML marshal failed: %v", err)
	}
	_, _ = fmt.Fprint(w, string(data))
}

func init() {
	generateSynth.register(generateCmd)
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Write YAML to this file instead of stdout")

	rootCmd.AddCommand(generateCmd)
}
