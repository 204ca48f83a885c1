package cliex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"time"

	"github.com/google/go-cmp/cmp"
)

// MismatchError reports that the output of an example invocation differs
// from the expected output. Expected and Actual hold the compared line
// sequences; with a truncated example Actual is only the compared suffix
// window of the real output.
type MismatchError struct {
	Expected, Actual []string
}

func (e *MismatchError) Error() string {
	return "output mismatch (-expected +actual):\n" + cmp.Diff(e.Expected, e.Actual)
}

// LaunchError reports that the child process for an example could not be
// started at all. After a successful availability probe this hints at a
// broken harness setup, e.g. a missing working directory.
type LaunchError struct {
	Command string
	err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch `%s`: %s", e.Command, e.err)
}

func (e *LaunchError) Unwrap() error { return e.err }

// TimeoutError reports that an example invocation was killed because it ran
// longer than the verifier's Timeout.
type TimeoutError struct {
	Command string
	Limit   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("`%s` still running after %s", e.Command, e.Limit)
}

// Verifier runs usage examples of one program and compares their output. The
// zero value is usable and runs examples in the current working directory
// without a timeout. A Verifier keeps no state between examples and may be
// reused; it must not be used concurrently with itself.
type Verifier struct {
	// Program is the name of the program under test, i.e. the mandatory
	// invocation prefix of every example.
	Program string
	// Dir is the working directory examples run in. Examples may read fixture
	// files below it but must not modify anything.
	Dir string
	// Timeout kills an example invocation that runs longer, reporting a
	// TimeoutError. Zero means wait forever.
	Timeout time.Duration
	// Env overrides the child process environment. Nil inherits the
	// environment of the calling process.
	Env []string
}

// VerifyText parses the example text block and verifies it, see Verify.
func (v *Verifier) VerifyText(ctx context.Context, text string) error {
	ex, err := ParseExample(v.Program, text)
	if err != nil {
		return err
	}
	return v.Verify(ctx, ex)
}

// Verify runs the example's command through the platform shell in the
// verifier's working directory and compares the combined output, standard
// error included, line by line against the expected output. A nonzero exit
// of the command is not an error, only differing output is. Differences are
// reported as *MismatchError, failure to start the child as *LaunchError and
// an exceeded Timeout as *TimeoutError.
func (v *Verifier) Verify(ctx context.Context, ex Example) error {
	out, err := v.run(ctx, ex.Command)
	if err != nil {
		return err
	}
	actual := splitLines(string(out))
	if ex.Truncated && len(actual) > len(ex.Expected) {
		actual = actual[len(actual)-len(ex.Expected):]
	}
	if !slices.Equal(ex.Expected, actual) {
		return &MismatchError{Expected: ex.Expected, Actual: actual}
	}
	return nil
}

func (v *Verifier) run(ctx context.Context, command string) ([]byte, error) {
	if v.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.Timeout)
		defer cancel()
	}
	shell, swtch := platformShell()
	cmd := exec.CommandContext(ctx, shell, swtch, command)
	cmd.Dir = v.Dir
	cmd.Env = v.Env
	// a killed shell may leave children holding the output pipe open
	cmd.WaitDelay = 10 * time.Second
	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined
	switch err := cmd.Run(); {
	case err == nil:
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return nil, &TimeoutError{Command: command, Limit: v.Timeout}
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		var exit *exec.ExitError
		if !errors.As(err, &exit) {
			return nil, &LaunchError{Command: command, err: err}
		}
		// Exit status is the command's business, the combined output is ours.
	}
	return combined.Bytes(), nil
}

// platformShell returns the shell and its command string switch used to run
// example invocations.
func platformShell() (shell, swtch string) {
	if runtime.GOOS == "windows" {
		if cmdExe := os.Getenv("ComSpec"); cmdExe != "" {
			return cmdExe, "/C"
		}
		return `C:\Windows\System32\cmd.exe`, "/C"
	}
	return "/bin/sh", "-c"
}
