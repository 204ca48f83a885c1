package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fractalqb/cliex"
)

// suiteFile is the YAML representation of one example suite.
type suiteFile struct {
	Program string `yaml:"program"`
	// Dir is the working directory the examples run in, resolved relative to
	// the suite file. Empty runs them next to the suite file.
	Dir      string       `yaml:"dir,omitempty"`
	Timeout  string       `yaml:"timeout,omitempty"`
	Examples []exampleDef `yaml:"examples"`
}

type exampleDef struct {
	Name   string   `yaml:"name,omitempty"`
	SkipOn []string `yaml:"skip_on,omitempty,flow"`
	Text   string   `yaml:"text"`
}

func readSuiteFile(file string) (*suiteFile, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var sf suiteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if sf.Program == "" {
		return nil, fmt.Errorf("%s: suite names no program", file)
	}
	return &sf, nil
}

// suite builds the runnable cliex suite, resolving the working directory
// against the directory of the suite file.
func (sf *suiteFile) suite(baseDir string) (*cliex.Suite, error) {
	dir := baseDir
	if sf.Dir != "" {
		if filepath.IsAbs(sf.Dir) {
			dir = sf.Dir
		} else {
			dir = filepath.Join(baseDir, sf.Dir)
		}
	}
	s := cliex.NewSuite(sf.Program, dir)
	if sf.Timeout != "" {
		d, err := time.ParseDuration(sf.Timeout)
		if err != nil {
			return nil, fmt.Errorf("suite timeout: %w", err)
		}
		s.Timeout = d
	}
	for i, ex := range sf.Examples {
		name := ex.Name
		if name == "" {
			name = fmt.Sprintf("example %d", i+1)
		}
		s.Add(name, ex.Text, ex.SkipOn...)
	}
	return s, nil
}
