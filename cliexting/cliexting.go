// Package cliexting supports the use of cliex in your Go tests. A Suite
// binds the program under test to its fixture directory and probes the
// program's availability once; every example checked through an unavailable
// suite skips instead of failing.
//
//	var examples = cliexting.New("gemmi", "testdata")
//
//	func TestFprime(t *testing.T) {
//		examples.Error(t, `$ gemmi fprime --wavelength=1.2 Se
//	Element	 E[eV]	Wavelength[A]	   f'   	  f"
//	Se	10332.0	 1.2    	 -1.4186	0.72389
//	`)
//	}
package cliexting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fractalqb/cliex"
)

// DefaultTimeout limits single examples of a Suite unless its Timeout says
// otherwise. A documented example that runs for minutes would stall the
// whole test run, this turns it into an ordinary test failure.
const DefaultTimeout = 5 * time.Minute

// Suite checks usage examples of one program within Go tests. Create it once
// per test package, the availability probe runs at most once per Suite.
type Suite struct {
	// Program and Dir name the program under test and the working directory
	// examples run in, see cliex.Verifier.
	Program string
	Dir     string
	// Timeout for each single example. Zero applies DefaultTimeout, a
	// negative value waits forever.
	Timeout time.Duration

	probe     sync.Once
	available bool
}

// New returns a Suite for the usage examples of program, run in the fixture
// directory dir.
func New(program, dir string) *Suite {
	return &Suite{Program: program, Dir: dir}
}

// Available reports whether the program under test can be launched. The
// probe runs on first use and the result is kept for the lifetime of the
// Suite.
func (s *Suite) Available() bool {
	s.probe.Do(func() { s.available = cliex.Available(s.Program, s.Dir) })
	return s.available
}

// Error verifies the example text block against the real program. A
// mismatching output or an exceeded timeout fails the test with t.Error; a
// malformed example or a child process that cannot be launched is a defect
// of the test suite itself and aborts with t.Fatal. Without the program the
// test skips.
func (s *Suite) Error(t *testing.T, example string) {
	t.Helper()
	s.check(t, example, (*testing.T).Error)
}

// Fatal is like Error but stops the test on the first mismatch.
func (s *Suite) Fatal(t *testing.T, example string) {
	t.Helper()
	s.check(t, example, (*testing.T).Fatal)
}

func (s *Suite) check(t *testing.T, example string, fail func(*testing.T, ...any)) {
	t.Helper()
	if !s.Available() {
		t.Skipf("program %s not found", s.Program)
	}
	vrf := cliex.Verifier{Program: s.Program, Dir: s.Dir, Timeout: s.timeout()}
	err := vrf.VerifyText(context.Background(), example)
	if err == nil {
		return
	}
	var (
		mismatch *cliex.MismatchError
		timeout  *cliex.TimeoutError
	)
	if errors.As(err, &mismatch) || errors.As(err, &timeout) {
		fail(t, err)
		return
	}
	t.Fatal(err)
}

func (s *Suite) timeout() time.Duration {
	switch {
	case s.Timeout > 0:
		return s.Timeout
	case s.Timeout < 0:
		return 0
	}
	return DefaultTimeout
}
