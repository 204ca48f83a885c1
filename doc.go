/*
Package cliex verifies that the documented usage examples of a command
line program really produce the output the documentation shows. An
example is a plain text block: the first line is the invocation, marked
with a "$ " shell prompt, and everything after it is the literal output
the command is expected to print.

	$ gemmi fprime --wavelength=1.2 Se
	Element	 E[eV]	Wavelength[A]	   f'   	  f"
	Se	10332.0	 1.2    	 -1.4186	0.72389

Verification runs the invocation through the platform shell, captures
standard output and standard error as one combined stream and compares
it line by line against the expected text. Lines are compared verbatim,
tabs and internal whitespace included. The exit status of the command is
not checked; examples that demonstrate error messages are as valid as
any other.

# Truncated Output

Documentation often shows only the tail of a long or partly
nondeterministic output, e.g. after a progress preamble. Such examples
start the expected output with the truncation mark on a line of its own:

	$ gemmi sfcalc --test -v tests/5wkd.pdb
	[...]
	RMSE=5.6297e-05  0.0001431%  max|dF|=0.0008977  R=0.000%

With the mark only the last lines of the actual output are compared,
as many as there are expected lines after the mark. Everything printed
before that window is ignored.

# Availability

Whether the program under test can be launched at all is probed once
per Suite with a cheap version query. When the probe fails every case
reports itself as skipped instead of failed, so a machine without the
program distinguishes "examples did not run" from "examples ran and
matched".

Package cliexting connects cliex to Go's testing package, the command
cliex checks example suites from the command line.
*/
package cliex
