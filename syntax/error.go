package syntax

import (
	"errors"
	"fmt"
)

// Common compiler errors
var (
	// ErrUnsupported indicates a construct that has no combinator
	// equivalent, such as anchors, word boundaries or lazy repetition.
	ErrUnsupported = errors.New("unsupported construct")

	// ErrInvalidConfig indicates a Config value out of range.
	ErrInvalidConfig = errors.New("invalid syntax configuration")
)

// Error reports a pattern that could not be compiled. Err is either
// ErrUnsupported or a *regexp/syntax.Error from the parser.
type Error struct {
	Pattern   string
	Construct string // offending sub-expression, empty for parse errors
	Err       error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Construct != "" {
		return fmt.Sprintf("compile %q: %v: %s", e.Pattern, e.Err, e.Construct)
	}
	return fmt.Sprintf("compile %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigError names the Config field that failed validation.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid syntax config: %s %s", e.Field, e.Message)
}

// Unwrap returns ErrInvalidConfig
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
