// Package gemmiex holds the documented usage examples of the gemmi
// crystallography toolkit as a cliex example suite. The examples come from
// gemmi's documentation and pin down the exact program output, including
// tabs and number formatting.
//
// The sfcalc examples read fixture files like tests/2242624.cif relative to
// the working directory, so the suite has to run from the root of a gemmi
// source tree. Point the GEMMIEX_DIR environment variable there; without it
// the current directory is used. When the gemmi program is not installed
// every example skips.
package gemmiex

import "os"

// DirEnv names the environment variable with the gemmi source tree root the
// examples run in.
const DirEnv = "GEMMIEX_DIR"

func fixtureDir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	return "."
}
