// Package fixture loads golden end-to-end test cases for the
// interpreter from YAML files: a Mython source program plus its
// expected stdout and exit code. Used both by internal/fixture's own
// tests and by cmd/mython's --fixtures replay mode.
package fixture

import (
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Case is one golden scenario.
type Case struct {
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	Stdout   string `yaml:"stdout"`
	ExitCode int    `yaml:"exit_code"`
}

// LoadFile parses a single fixture YAML file, which may contain one
// or more Cases under a top-level `cases:` key.
func LoadFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Cases []Case `yaml:"cases"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Cases, nil
}

// LoadDir loads every *.yaml or *.yml fixture file in dir, in a stable
// (lexical filename) order, and concatenates their cases.
func LoadDir(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".yaml" || filepath.Ext(e.Name()) == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var all []Case
	for _, name := range names {
		cases, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		all = append(all, cases...)
	}
	return all, nil
}
