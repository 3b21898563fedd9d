package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/paging-sim/paging-sim/sim"
	"github.com/paging-sim/paging-sim/sim/trace"
)

var (
	logLevel string // Log verbosity level, shared by every subcommand

	// CLI flags for `run`
	runOpts runOptions
)

// runOptions carries the raw `run` flag values before validation.
type runOptions struct {
	refs          string // Comma-separated page references
	refsFile      string // Path to a reference file (text or YAML)
	frames        string // Number of physical frames
	algorithm     string // Algorithm name, or "all"
	scenario      string // Named preset from the scenarios file
	scenariosFile string // Path to scenarios YAML
	format        string // Output format
	out           string // Output path; stdout when empty
	traceLevel    string // Decision trace level
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "paging-sim",
	Short: "Page replacement simulator (FIFO, LRU, Optimal, Clock)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd simulates one algorithm (or all of them) over a reference sequence
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a page replacement simulation",
	Run: func(cmd *cobra.Command, args []string) {
		if !trace.IsValidTraceLevel(runOpts.traceLevel) {
			logrus.Fatalf("Invalid trace level %q; valid: none, decisions", runOpts.traceLevel)
		}
		if !isValidFormat(runOpts.format) {
			logrus.Fatalf("Invalid format %q; valid: %v", runOpts.format, validFormatNames())
		}

		in, err := resolveRunInput(runOpts, cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Simulating %v over %d references with %d frames (%s)",
			in.algorithms, len(in.refs), in.frames, in.source)

		results := make([]*sim.SimulationResult, 0, len(in.algorithms))
		traces := make([]*trace.SimulationTrace, 0, len(in.algorithms))
		for _, alg := range in.algorithms {
			var st *trace.SimulationTrace
			if trace.TraceLevel(runOpts.traceLevel) == trace.TraceLevelDecisions {
				st = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
			}
			result, err := sim.SimulateWithTrace(alg, in.refs, in.frames, st)
			if err != nil {
				logrus.Fatalf("Simulation failed: %v", err)
			}
			results = append(results, result)
			traces = append(traces, st)
		}

		if err := exportResults(runOpts.out, runOpts.format, results); err != nil {
			logrus.Fatalf("Export failed: %v", err)
		}
		for i, st := range traces {
			if st.Enabled() {
				printTraceSummary(os.Stdout, results[i].Algorithm, trace.Summarize(st))
			}
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&runOpts.refs, "refs", "", "Comma-separated page references (default sequence when empty)")
	runCmd.Flags().StringVar(&runOpts.refsFile, "refs-file", "", "Path to a reference file (.txt/.csv list or generated .yaml)")
	runCmd.Flags().StringVar(&runOpts.frames, "frames", fmt.Sprint(defaultFrameCount), "Number of physical frames")
	runCmd.Flags().StringVar(&runOpts.algorithm, "algorithm", "all", "Replacement algorithm (fifo, lru, optimal, clock, or all)")
	runCmd.Flags().StringVar(&runOpts.scenario, "scenario", "", "Named scenario from the scenarios file")
	runCmd.Flags().StringVar(&runOpts.scenariosFile, "scenarios-file", "scenarios.yaml", "Path to scenarios YAML")
	runCmd.Flags().StringVar(&runOpts.format, "format", formatTable, "Output format (table, steps, json, yaml, msgpack, csv)")
	runCmd.Flags().StringVar(&runOpts.out, "out", "", "Write output to this file instead of stdout")
	runCmd.Flags().StringVar(&runOpts.traceLevel, "trace", "none", "Decision trace level (none, decisions)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
