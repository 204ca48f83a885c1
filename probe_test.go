package cliex

import "testing"

func TestAvailable(t *testing.T) {
	skipWithoutPosixShell(t)
	t.Run("launchable program", func(t *testing.T) {
		// sh may well exit nonzero on --version, launching it is enough
		if !Available("sh", "") {
			t.Error("sh not available")
		}
	})
	t.Run("missing program", func(t *testing.T) {
		if Available("cliex-no-such-program", "") {
			t.Error("phantasy program reported available")
		}
	})
	t.Run("missing working directory", func(t *testing.T) {
		if Available("sh", "testdata/no-such-dir") {
			t.Error("probe in missing directory reported available")
		}
	})
}
