package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/paging-sim/paging-sim/sim/segment"
)

var (
	segmentScript string
	segmentMemory int
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Replay a first-fit segmentation script",
	Long: "Read allocator commands (allocate <id> <size>, deallocate <id>, show, exit) from --script " +
		"or stdin and replay them against a first-fit allocator, then print the final memory layout.",
	Run: func(cmd *cobra.Command, args []string) {
		alloc, err := segment.NewAllocator(segmentMemory)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		var in io.Reader = os.Stdin
		if segmentScript != "" && segmentScript != "-" {
			file, err := os.Open(segmentScript)
			if err != nil {
				logrus.Fatalf("Failed to open script: %v", err)
			}
			defer func() { _ = file.Close() }()
			in = file
		}

		if err := replaySegmentScript(in, alloc, os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// replaySegmentScript runs the script and prints the final layout and totals.
func replaySegmentScript(r io.Reader, alloc *segment.Allocator, w io.Writer) error {
	res, err := segment.RunScript(r, alloc, w)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, "=== Final Memory Layout ===")
	segment.PrintLayout(w, alloc)
	_, _ = fmt.Fprintf(w, "Commands: %d  Allocated: %d  Deallocated: %d  Failed: %d\n",
		res.Commands, res.Allocated, res.Deallocated, res.Failed)
	return nil
}

func init() {
	segmentCmd.Flags().StringVar(&segmentScript, "script", "", "Path to a command script (stdin when empty or -)")
	segmentCmd.Flags().IntVar(&segmentMemory, "memory", 1000, "Total memory size in units")

	rootCmd.AddCommand(segmentCmd)
}
