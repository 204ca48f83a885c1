package cliex

import (
	"bufio"
	"fmt"
	"strings"
)

// TruncationMark as the first expected output line of an example makes the
// comparison check only the tail of the actual output.
const TruncationMark = "[...]"

// Prompt marks the invocation line of an example.
const Prompt = "$ "

// DefinitionError reports a malformed example text. It signals a defect in
// the example suite itself, not in the program under test, and must not be
// confused with a failed comparison.
type DefinitionError string

func (e DefinitionError) Error() string { return "example definition: " + string(e) }

// Example is one documented usage example, parsed into the shell command to
// run and the output lines the command is expected to print. Examples are
// immutable once parsed.
type Example struct {
	// Command is the invocation with the leading prompt stripped, ready to be
	// passed to the platform shell.
	Command string
	// Expected holds the expected output lines without line terminators. With
	// Truncated only the last len(Expected) lines of the actual output are
	// compared.
	Expected []string
	// Truncated is set when the expected output started with TruncationMark.
	Truncated bool
}

// ParseExample parses the example text block for the given program. The first
// line must start with Prompt, the program name and a space; the remaining
// lines are the expected output. A violated invocation prefix, an example
// without expected output lines and a truncation mark with nothing after it
// all return a DefinitionError.
func ParseExample(program, text string) (Example, error) {
	invocation, body, _ := strings.Cut(text, "\n")
	invocation = strings.TrimSuffix(invocation, "\r")
	prefix := Prompt + program + " "
	if !strings.HasPrefix(invocation, prefix) {
		return Example{}, DefinitionError(fmt.Sprintf(
			"invocation %q does not start with %q", invocation, prefix,
		))
	}
	ex := Example{
		Command:  strings.TrimPrefix(invocation, Prompt),
		Expected: splitLines(body),
	}
	if len(ex.Expected) > 0 && strings.TrimSpace(ex.Expected[0]) == TruncationMark {
		ex.Truncated = true
		ex.Expected = ex.Expected[1:]
	}
	if len(ex.Expected) == 0 {
		if ex.Truncated {
			return Example{}, DefinitionError(
				"truncation mark with no expected lines matches anything",
			)
		}
		return Example{}, DefinitionError("no expected output lines")
	}
	return ex, nil
}

// splitLines splits text on line boundaries, accepting both "\n" and "\r\n"
// and dropping the terminators.
func splitLines(text string) (lines []string) {
	scn := bufio.NewScanner(strings.NewReader(text))
	scn.Buffer(nil, maxLineLen)
	for scn.Scan() {
		lines = append(lines, scn.Text())
	}
	return lines
}

// maxLineLen gives line splitting more headroom than bufio's 64k default.
const maxLineLen = 4 * 1024 * 1024
