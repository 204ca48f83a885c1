package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSuiteYAML(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestReadSuiteFile(t *testing.T) {
	file := writeSuiteYAML(t, `program: gemmi
dir: fixtures
timeout: 30s
examples:
  - name: fprime1
    skip_on: [windows]
    text: |
      $ gemmi fprime --wavelength=1.2 Se
      output line
  - text: |
      $ gemmi sfcalc x
      out
`)
	sf, err := readSuiteFile(file)
	require.NoError(t, err)
	assert.Equal(t, "gemmi", sf.Program)
	require.Len(t, sf.Examples, 2)
	assert.Equal(t, "fprime1", sf.Examples[0].Name)
	assert.Equal(t, []string{"windows"}, sf.Examples[0].SkipOn)
	assert.Equal(t,
		"$ gemmi fprime --wavelength=1.2 Se\noutput line\n",
		sf.Examples[0].Text,
	)

	s, err := sf.suite(filepath.Dir(file))
	require.NoError(t, err)
	assert.Equal(t, "gemmi", s.Program)
	assert.Equal(t, filepath.Join(filepath.Dir(file), "fixtures"), s.Dir)
	assert.Equal(t, 30*time.Second, s.Timeout)
	assert.Equal(t, 2, s.Len())
}

func TestReadSuiteFile_defaultDir(t *testing.T) {
	file := writeSuiteYAML(t, `program: gemmi
examples:
  - text: |
      $ gemmi fprime Se
      out
`)
	sf, err := readSuiteFile(file)
	require.NoError(t, err)
	s, err := sf.suite(filepath.Dir(file))
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(file), s.Dir,
		"examples must run next to the suite file by default")
}

func TestReadSuiteFile_errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := readSuiteFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("no program", func(t *testing.T) {
		file := writeSuiteYAML(t, "examples:\n  - text: x\n")
		_, err := readSuiteFile(file)
		assert.ErrorContains(t, err, "names no program")
	})
	t.Run("broken yaml", func(t *testing.T) {
		file := writeSuiteYAML(t, ":\t{")
		_, err := readSuiteFile(file)
		assert.Error(t, err)
	})
	t.Run("bad timeout", func(t *testing.T) {
		sf := suiteFile{Program: "gemmi", Timeout: "half an hour"}
		_, err := sf.suite(".")
		assert.ErrorContains(t, err, "suite timeout")
	})
}
