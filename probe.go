package cliex

import (
	"errors"
	"io"
	"os/exec"
)

// Available reports whether program can be launched from dir at all. It asks
// the program for its version and only cares that the child process starts:
// a nonzero exit still counts as available, only an OS level launch failure,
// typically a program missing from PATH, does not. The probe result gates a
// whole Suite; compute it once and pass it around instead of probing per
// case.
func Available(program, dir string) bool {
	cmd := exec.Command(program, "--version")
	cmd.Dir = dir
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	err := cmd.Run()
	if err == nil {
		return true
	}
	var exit *exec.ExitError
	return errors.As(err, &exit)
}
