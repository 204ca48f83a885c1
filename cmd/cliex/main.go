// A command line tool to check documented CLI usage examples
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = cobra.Command{
	Use:   "cliex",
	Short: "Check documented usage examples of command line programs",
	Long: `cliex runs the usage examples documented for a command line program and
compares their real output, stderr included, line by line with the output
the documentation shows. Suites of examples are read from YAML files:

    program: gemmi
    examples:
      - name: fprime1
        text: |
          $ gemmi fprime --wavelength=1.2 Se
          Element... (the exact expected output)

An expected output starting with the line [...] pins down only the last
lines of the actual output.`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
