package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fractalqb/cliex"
)

func init() {
	checkCmd.Run = checkSuites
	checkCmd.Flags().BoolVarP(&checkCmd.quiet, "quiet", "q", false,
		"Only report failing and skipped examples")
	rootCmd.AddCommand(&checkCmd.Command)
}

var checkCmd = struct {
	cobra.Command
	quiet bool
}{
	Command: cobra.Command{
		Use:   "check <suite.yaml>...",
		Short: "Run example suites against the real programs",
		Args:  cobra.MinimumNArgs(1),
	},
}

func checkSuites(cmd *cobra.Command, files []string) {
	log.Printf("check run %s", uuid.New())
	var passed, failed, skipped int
	for _, file := range files {
		sf, err := readSuiteFile(file)
		if err != nil {
			log.Fatal(err)
		}
		s, err := sf.suite(filepath.Dir(file))
		if err != nil {
			log.Fatalf("%s: %s", file, err)
		}
		err = s.Run(context.Background(), func(r cliex.Result) {
			switch r.Status {
			case cliex.StatusPassed:
				passed++
				if !checkCmd.quiet {
					log.Printf("pass %s: %s", file, r.Name)
				}
			case cliex.StatusFailed:
				failed++
				log.Printf("FAIL %s: %s\n%s", file, r.Name, r.Err)
			case cliex.StatusSkipped:
				skipped++
				log.Printf("skip %s: %s (%s)", file, r.Name, r.Reason)
			}
		})
		if err != nil {
			// broken suite definition or launch failure, not a mismatch
			log.Fatalf("%s: %s", file, err)
		}
	}
	log.Printf("%d passed, %d failed, %d skipped", passed, failed, skipped)
	if failed > 0 {
		os.Exit(1)
	}
}
