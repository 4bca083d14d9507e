// Package config loads the corepat tool configuration.
//
// Configuration comes from an optional YAML file. Values set in the file
// override the defaults, and command line flags override both.
//
// Example file:
//
//	log_level: info
//	syntax:
//	  case_insensitive: true
//	  set_threshold: 4
//	scan:
//	  workers: 8
//	output:
//	  color: never
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	resyntax "regexp/syntax"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/coregx/corepat/internal/logging"
	"github.com/coregx/corepat/syntax"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config is the tool configuration.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Syntax   SyntaxConfig `yaml:"syntax"`
	Scan     ScanConfig   `yaml:"scan"`
	Output   OutputConfig `yaml:"output"`
}

// SyntaxConfig controls pattern compilation.
type SyntaxConfig struct {
	CaseInsensitive bool `yaml:"case_insensitive"`
	// DotNL lets . match a newline.
	DotNL bool `yaml:"dot_nl"`
	// SetThreshold is the number of literals an alternation needs before it
	// becomes an Aho-Corasick set. Negative disables sets.
	SetThreshold   int `yaml:"set_threshold"`
	MaxSetLiterals int `yaml:"max_set_literals"`
}

// ScanConfig controls file scanning.
type ScanConfig struct {
	// Workers is the number of files scanned concurrently.
	Workers int `yaml:"workers"`
	// NoMmap reads files into memory instead of mapping them.
	NoMmap bool `yaml:"no_mmap"`
}

// OutputConfig controls result printing.
type OutputConfig struct {
	// Color is auto, always or never.
	Color string `yaml:"color"`
	// Steps prints every step instead of only matches.
	Steps bool `yaml:"steps"`
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	defaults := syntax.DefaultConfig()
	return &Config{
		LogLevel: "warn",
		Syntax: SyntaxConfig{
			SetThreshold:   defaults.SetThreshold,
			MaxSetLiterals: defaults.MaxSetLiterals,
		},
		Scan: ScanConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// Load returns the defaults merged with the YAML file at path. An empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Syntax.CaseInsensitive {
		c.Syntax.CaseInsensitive = true
	}
	if other.Syntax.DotNL {
		c.Syntax.DotNL = true
	}
	if other.Syntax.SetThreshold != 0 {
		c.Syntax.SetThreshold = other.Syntax.SetThreshold
	}
	if other.Syntax.MaxSetLiterals != 0 {
		c.Syntax.MaxSetLiterals = other.Syntax.MaxSetLiterals
	}
	if other.Scan.Workers != 0 {
		c.Scan.Workers = other.Scan.Workers
	}
	if other.Scan.NoMmap {
		c.Scan.NoMmap = true
	}
	if other.Output.Color != "" {
		c.Output.Color = other.Output.Color
	}
	if other.Output.Steps {
		c.Output.Steps = true
	}
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.Scan.Workers < 1 {
		return fmt.Errorf("%w: scan.workers must be positive, got %d", ErrInvalid, c.Scan.Workers)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: output.color must be auto, always or never, got %q", ErrInvalid, c.Output.Color)
	}
	if err := c.SyntaxConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// SyntaxConfig translates the syntax section for the compiler.
func (c *Config) SyntaxConfig() syntax.Config {
	sc := syntax.DefaultConfig()
	if c.Syntax.CaseInsensitive {
		sc.Flags |= resyntax.FoldCase
	}
	if c.Syntax.DotNL {
		sc.Flags |= resyntax.DotNL
	}
	sc.MaxSetLiterals = c.Syntax.MaxSetLiterals
	sc.SetThreshold = max(c.Syntax.SetThreshold, 0)
	return sc
}
