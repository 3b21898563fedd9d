package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/paging-sim/paging-sim/sim"
	"github.com/paging-sim/paging-sim/sim/analysis"
)

var (
	compareRefs     string
	compareRefsFile string
	compareFrames   string
	compareTrials   int
	compareSynth    syntheticOptions
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all replacement algorithms on the same input",
	Long: "Simulate FIFO, LRU, Optimal and Clock on one reference sequence and report faults side by side. " +
		"With --trials, references are generated from a synthetic workload and fault statistics are reported per algorithm.",
	Run: func(cmd *cobra.Command, args []string) {
		frames, err := parseFrameCount(compareFrames)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		if compareTrials > 0 {
			spec, err := compareSynth.referenceSpec()
			if err != nil {
				logrus.Fatalf("Invalid workload: %v", err)
			}
			report, err := analysis.RunTrials(spec, compareTrials, frames, sim.AllAlgorithms())
			if err != nil {
				logrus.Fatalf("Trials failed: %v", err)
			}
			printTrials(os.Stdout, report)
			return
		}

		refs, err := loadReferences(compareRefs, compareRefsFile)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		results, err := analysis.Compare(refs, frames, sim.AllAlgorithms())
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		renderComparison(os.Stdout, results)
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareRefs, "refs", "", "Comma-separated page references (default sequence when empty)")
	compareCmd.Flags().StringVar(&compareRefsFile, "refs-file", "", "Path to a reference file")
	compareCmd.Flags().StringVar(&compareFrames, "frames", "3", "Number of physical frames")
	compareCmd.Flags().IntVar(&compareTrials, "trials", 0, "Number of synthetic trials (0 = compare on --refs)")
	compareSynth.register(compareCmd)

	rootCmd.AddCommand(compareCmd)
}
