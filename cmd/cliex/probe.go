package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalqb/cliex"
)

func init() {
	probeCmd.Run = probePrograms
	probeCmd.Flags().StringVarP(&probeCmd.dir, "dir", "C", "",
		"Probe with this working directory")
	rootCmd.AddCommand(&probeCmd.Command)
}

var probeCmd = struct {
	cobra.Command
	dir string
}{
	Command: cobra.Command{
		Use:   "probe <program>...",
		Short: "Check if programs can be launched at all",
		Long: `probe launches each program once with a version query, the way check
decides whether a suite runs or skips. The exit status is 0 only when all
programs are available.`,
		Args: cobra.MinimumNArgs(1),
	},
}

func probePrograms(cmd *cobra.Command, programs []string) {
	missing := 0
	for _, p := range programs {
		if cliex.Available(p, probeCmd.dir) {
			fmt.Printf("%s: available\n", p)
		} else {
			fmt.Printf("%s: not found\n", p)
			missing++
		}
	}
	if missing > 0 {
		os.Exit(1)
	}
}
