package cliex

import (
	"context"
	"errors"
	"runtime"
	"slices"
	"time"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// Status classifies the outcome of one suite case.
type Status int

const (
	// StatusPassed: the example ran and its output matched.
	StatusPassed Status = iota
	// StatusFailed: the example ran but its output differed, or it exceeded
	// the suite timeout. The suite continues with the next case.
	StatusFailed
	// StatusSkipped: the example was not run, see Result.Reason.
	StatusSkipped
	// StatusError: the harness itself is broken, e.g. a malformed example or
	// a launch failure after a successful probe. The suite stops.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "pass"
	case StatusFailed:
		return "fail"
	case StatusSkipped:
		return "skip"
	case StatusError:
		return "error"
	}
	return "invalid status"
}

// Result is the outcome of one suite case.
type Result struct {
	Name   string
	Status Status
	// Reason tells why a case was skipped.
	Reason string
	// Err holds the *MismatchError or *TimeoutError of a failed case or the
	// harness defect of an errored one.
	Err error
}

// Case is one registered example of a Suite.
type Case struct {
	Name string
	Text string

	skipReason string
	lsNext     *Case
}

// ListNext to implement intrusive singly linked list
func (c *Case) ListNext() islist.Node { return c.lsNext }

// SetListNext to implement intrusive singly linked list
func (c *Case) SetListNext(n islist.Node) {
	if n == nil {
		c.lsNext = nil
	} else {
		c.lsNext = n.(*Case)
	}
}

const reasonNotFound = "program not found"

// Suite is an ordered registry of usage examples for one program. Cases are
// added once during construction and drained by a single Run; results are
// never cached between runs. Cases share nothing but the read-only working
// directory, so a surrounding harness may distribute them as it likes.
type Suite struct {
	// Program and Dir name the program under test and the fixture directory,
	// see Verifier.
	Program string
	Dir     string
	// Timeout limits each single case, not the whole run.
	Timeout time.Duration

	pending *islist.List
}

// NewSuite returns an empty suite for the usage examples of program, run in
// the fixture directory dir.
func NewSuite(program, dir string) *Suite {
	return &Suite{Program: program, Dir: dir}
}

// Add registers the example text block as a named case. Cases run in the
// order they were added. An example known not to hold on some operating
// systems names them in skipOS with their GOOS names; on such a system the
// case is registered as skipped. That decision falls here, at registration
// time, not during the run.
func (s *Suite) Add(name, text string, skipOS ...string) {
	c := &Case{Name: name, Text: text}
	if slices.Contains(skipOS, runtime.GOOS) {
		c.skipReason = "known to differ on " + runtime.GOOS
	}
	if s.pending == nil {
		s.pending = islist.New(c)
	} else {
		s.pending.PushBack(c)
	}
}

// Len returns the number of cases still pending.
func (s *Suite) Len() int {
	if s.pending == nil {
		return 0
	}
	return s.pending.Len()
}

// Run probes the program once and then verifies all pending cases in order,
// draining the suite. Each result is passed to onResult, if not nil. With
// the program unavailable every case reports StatusSkipped and the run is
// still successful. Mismatches and timeouts are recorded per case and the
// run continues; a StatusError result stops the run and its error is
// returned.
func (s *Suite) Run(ctx context.Context, onResult func(Result)) error {
	available := Available(s.Program, s.Dir)
	vrf := &Verifier{Program: s.Program, Dir: s.Dir, Timeout: s.Timeout}
	for s.Len() > 0 {
		c := s.pending.Front().(*Case)
		s.pending.Drop(1)
		res := runCase(ctx, vrf, c, available)
		if onResult != nil {
			onResult(res)
		}
		if res.Status == StatusError {
			return res.Err
		}
	}
	return nil
}

func runCase(ctx context.Context, vrf *Verifier, c *Case, available bool) Result {
	if !available {
		return Result{Name: c.Name, Status: StatusSkipped, Reason: reasonNotFound}
	}
	if c.skipReason != "" {
		return Result{Name: c.Name, Status: StatusSkipped, Reason: c.skipReason}
	}
	err := vrf.VerifyText(ctx, c.Text)
	if err == nil {
		return Result{Name: c.Name, Status: StatusPassed}
	}
	var (
		mismatch *MismatchError
		timeout  *TimeoutError
	)
	if errors.As(err, &mismatch) || errors.As(err, &timeout) {
		return Result{Name: c.Name, Status: StatusFailed, Err: err}
	}
	return Result{Name: c.Name, Status: StatusError, Err: err}
}
