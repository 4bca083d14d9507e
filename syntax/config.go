package syntax

import (
	"fmt"
	resyntax "regexp/syntax"
)

// Config controls how patterns are parsed and lowered.
//
// Example:
//
//	config := syntax.DefaultConfig()
//	config.SetThreshold = 0 // never build Aho-Corasick sets
//	e, err := syntax.CompileConfig(`foo|bar|baz`, config)
type Config struct {
	// Flags are the regexp/syntax parse flags.
	// Default: syntax.Perl
	Flags resyntax.Flags

	// SetThreshold is the number of literals an alternation must expand to
	// before it is compiled into one Aho-Corasick set instead of a chain of
	// Or nodes. Literals whose occurrences can overlap stay an Or chain, so
	// the setting never changes the steps. 0 disables sets.
	// Default: 3
	SetThreshold int

	// MaxSetLiterals caps the literal expansion of an alternation. Larger
	// alternations are compiled into Or chains.
	// Default: 256
	MaxSetLiterals int

	// MaxClassExpansion is the largest character class that is expanded into
	// literals while looking for a set, e.g. [rz] in ba[rz].
	// Default: 16
	MaxClassExpansion int
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		Flags:             resyntax.Perl,
		SetThreshold:      3,
		MaxSetLiterals:    256,
		MaxClassExpansion: 16,
	}
}

// Validate checks that every field is in range.
//
// Valid ranges:
//   - SetThreshold: 0 to MaxSetLiterals
//   - MaxSetLiterals: 1 to 10,000
//   - MaxClassExpansion: 1 to 256
func (c Config) Validate() error {
	if c.MaxSetLiterals < 1 || c.MaxSetLiterals > 10_000 {
		return &ConfigError{Field: "MaxSetLiterals", Message: "must be between 1 and 10,000"}
	}
	if c.SetThreshold < 0 || c.SetThreshold > c.MaxSetLiterals {
		return &ConfigError{Field: "SetThreshold", Message: fmt.Sprintf("must be between 0 and MaxSetLiterals (%d)", c.MaxSetLiterals)}
	}
	if c.MaxClassExpansion < 1 || c.MaxClassExpansion > 256 {
		return &ConfigError{Field: "MaxClassExpansion", Message: "must be between 1 and 256"}
	}
	return nil
}
