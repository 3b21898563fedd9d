package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	sim "github.com/paging-sim/paging-sim/sim"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the available replacement algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		printAlgorithms(os.Stdout)
	},
}

func printAlgorithms(w io.Writer) {
	for _, alg := range sim.AllAlgorithms() {
		_, _ = fmt.Fprintln(w, alg)
	}
	_, _ = fmt.Fprintf(w, "Accepted names: %s, all\n", strings.Join(sim.ValidAlgorithmNames(), ", "))
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
