// Package config loads the optional .subshell YAML file, which supplies the
// context-level defaults for run options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/deixis/subshell/internal/runner"
)

// FileName is the defaults file looked up in the working directory.
const FileName = ".subshell"

// Config holds the parsed .subshell configuration.
type Config struct {
	Run RunDefaults `yaml:"run"`
}

// RunDefaults mirrors the recognized run options. Absent keys keep their
// zero value, except fallback which defaults to enabled.
type RunDefaults struct {
	Warn     bool     `yaml:"warn"`
	Hide     HideSpec `yaml:"hide"`
	Pty      bool     `yaml:"pty"`
	Fallback *bool    `yaml:"fallback"`
	Echo     bool     `yaml:"echo"`
	Encoding string   `yaml:"encoding"`
}

// FallbackEnabled returns the configured fallback setting or its default.
func (d *RunDefaults) FallbackEnabled() bool {
	if d.Fallback == nil {
		return true
	}
	return *d.Fallback
}

// Opts flattens the defaults into the runner's option set.
func (d *RunDefaults) Opts() runner.Opts {
	return runner.Opts{
		Warn:     d.Warn,
		Hide:     string(d.Hide),
		Pty:      d.Pty,
		Fallback: d.FallbackEnabled(),
		Echo:     d.Echo,
		Encoding: d.Encoding,
	}
}

// HideSpec accepts the hide option's YAML forms: a boolean or one of the
// stream names. Booleans canonicalize to "both" and "".
type HideSpec string

func (h *HideSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!bool":
		var v bool
		if err := node.Decode(&v); err != nil {
			return err
		}
		if v {
			*h = "both"
		} else {
			*h = ""
		}
		return nil
	case "!!str", "!!null":
		*h = HideSpec(node.Value)
		return nil
	default:
		return fmt.Errorf("hide: unexpected YAML %s value", node.Tag)
	}
}

// Load reads the .subshell file from dir. A missing file yields the zero
// Config; a malformed one is an error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return cfg, nil
}
