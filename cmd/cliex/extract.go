package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fractalqb/cliex"
)

func init() {
	extractCmd.Run = extractFiles
	extractCmd.Flags().StringVarP(&extractCmd.program, "program", "p", "",
		"Name of the program the examples invoke")
	extractCmd.MarkFlagRequired("program")
	extractCmd.Flags().StringVarP(&extractCmd.out, "output", "o", "",
		"Write the suite to this file instead of stdout")
	rootCmd.AddCommand(&extractCmd.Command)
}

var extractCmd = struct {
	cobra.Command
	program string
	out     string
}{
	Command: cobra.Command{
		Use:   "extract -p <program> <transcript>...",
		Short: "Turn shell transcripts into an example suite",
		Long: `extract scans transcript or documentation files for blocks that start
with an invocation line "$ <program> ..." and collects the lines up to the
next blank line or prompt as the expected output. The found examples are
written as a suite YAML file ready for cliex check.`,
	},
}

func extractFiles(cmd *cobra.Command, files []string) {
	sf := suiteFile{Program: extractCmd.program}
	if len(files) == 0 {
		defs, err := extractExamples(extractCmd.program, os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		sf.Examples = defs
	}
	for _, f := range files {
		rd, err := os.Open(f)
		if err != nil {
			log.Fatal(err)
		}
		defs, err := extractExamples(extractCmd.program, rd)
		rd.Close()
		if err != nil {
			log.Fatalf("%s: %s", f, err)
		}
		sf.Examples = append(sf.Examples, defs...)
	}
	if len(sf.Examples) == 0 {
		log.Fatalf("no examples for program %s found", extractCmd.program)
	}
	if extractCmd.out != "" {
		wr, err := os.Create(extractCmd.out)
		if err != nil {
			log.Fatal(err)
		}
		defer wr.Close()
		writeSuite(wr, &sf)
		return
	}
	writeSuite(os.Stdout, &sf)
}

func writeSuite(wr io.Writer, sf *suiteFile) {
	enc := yaml.NewEncoder(wr)
	defer enc.Close()
	if err := enc.Encode(sf); err != nil {
		log.Fatal(err)
	}
}

// extractExamples scans rd for example blocks of program. A block starts
// with a prompted invocation line and ends at the first blank line, the next
// prompt or EOF. Invocations without any output line are dropped, cliex has
// nothing to compare them with.
func extractExamples(program string, rd io.Reader) (defs []exampleDef, err error) {
	prompt := cliex.Prompt + program + " "
	named := make(map[string]int)
	var block []string
	finish := func() {
		if len(block) < 2 {
			block = nil
			return
		}
		name := exampleName(program, block[0], named)
		defs = append(defs, exampleDef{
			Name: name,
			Text: strings.Join(block, "\n") + "\n",
		})
		block = nil
	}
	scn := bufio.NewScanner(rd)
	for scn.Scan() {
		line := scn.Text()
		switch {
		case strings.HasPrefix(line, prompt):
			finish()
			block = []string{line}
		case block == nil: // prose between examples
		case strings.TrimSpace(line) == "" || strings.HasPrefix(line, cliex.Prompt):
			finish()
		default:
			block = append(block, line)
		}
	}
	finish()
	return defs, scn.Err()
}

// exampleName derives a unique name from the invocation's subcommand.
func exampleName(program, invocation string, named map[string]int) string {
	base := program
	if fields := strings.Fields(strings.TrimPrefix(invocation, cliex.Prompt)); len(fields) > 1 &&
		!strings.HasPrefix(fields[1], "-") {
		base = fields[1]
	}
	named[base]++
	if n := named[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}
