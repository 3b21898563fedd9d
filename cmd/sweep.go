package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/paging-sim/paging-sim/sim/analysis"
)

var (
	sweepRefs      string
	sweepRefsFile  string
	sweepAlgorithm string
	sweepMinFrames int
	sweepMaxFrames int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run over a range of frame counts and flag Belady anomalies",
	Run: func(cmd *cobra.Command, args []string) {
		refs, err := loadReferences(sweepRefs, sweepRefsFile)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		algs, err := parseAlgorithms(sweepAlgorithm)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		report, err := analysis.Sweep(refs, algs, sweepMinFrames, sweepMaxFrames)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		for _, a := range report.Anomalies() {
			logrus.Debugf("Belady anomaly: %s at %d frames", a.Algorithm, a.Frames)
		}
		printSweep(os.Stdout, report)
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepRefs, "refs", "", "Comma-separated page references (default sequence when empty)")
	sweepCmd.Flags().StringVar(&sweepRefsFile, "refs-file", "", "Path to a reference file")
	sweepCmd.Flags().StringVar(&sweepAlgorithm, "algorithm", "all", "Replacement algorithm (fifo, lru, optimal, clock, or all)")
	sweepCmd.Flags().IntVar(&sweepMinFrames, "min-frames", 1, "Smallest frame count")
	sweepCmd.Flags().IntVar(&sweepMaxFrames, "max-frames", 7, "Largest frame count")

	rootCmd.AddCommand(sweepCmd)
}
