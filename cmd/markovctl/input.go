package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/markov/chain"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

var errLabelCount = errors.New("labels must name every state")

// chainFile is the on-disk form of a transition matrix. JSON input is read
// through the YAML decoder, which accepts it as a subset.
type chainFile struct {
	Labels      []string    `yaml:"labels,omitempty" json:"labels,omitempty"`
	Transitions [][]float64 `yaml:"transitions" json:"transitions"`
}

func loadChainFile(path string) (*chainFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var f chainFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(f.Labels) > 0 && len(f.Labels) != len(f.Transitions) {
		return nil, fmt.Errorf("%s: %d labels for %d states: %w", path, len(f.Labels), len(f.Transitions), errLabelCount)
	}

	return &f, nil
}

// model validates the file contents as a Markov chain.
func (f *chainFile) model(opts ...chain.Option) (*chain.Chain, error) {
	return chain.NewFromRows(f.Transitions, opts...)
}

// label names state i, falling back to its index.
func (f *chainFile) label(i int) string {
	if i < len(f.Labels) {
		return f.Labels[i]
	}

	return fmt.Sprint(i)
}

// encode writes v to w in the requested format.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown --format %q (want %s or %s)", format, formatYAML, formatJSON)
	}
}
