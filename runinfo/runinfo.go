// Package runinfo reads the run_info.yaml document the simulation
// setup tooling drops next to each run: the seed and force-field
// scaling parameters that distinguish runs of a trial set. The
// document annotates analysis results and is never written back.
package runinfo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Info is one run's metadata. Fields this package does not model end
// up in Extra, so setup tooling can grow the document without breaking
// older readers.
type Info struct {
	Name    string         `yaml:"name"`
	Legend  string         `yaml:"legend"`
	Seed    int            `yaml:"seed"`
	Sigma   float64        `yaml:"sigma"`
	Epsilon float64        `yaml:"epsilon"`
	Extra   map[string]any `yaml:",inline"`
}

// NotFoundError reports a missing run-info document.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "run info document not found: " + e.Path
}

// Read parses the run-info document at path.
func Read(path string) (*Info, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, err
	}
	info := &Info{}
	if err := yaml.Unmarshal(b, info); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}
