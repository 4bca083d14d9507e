package search

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrHaystackMismatch is returned when searchers that are combined into one
// searcher were built for different haystacks.
var ErrHaystackMismatch = errors.New("searchers do not share one haystack")

// HaystackError reports which combinator received mismatched children.
type HaystackError struct {
	Op          string
	Left, Right int // haystack lengths, for diagnostics
	Err         error
}

// Error implements the error interface
func (e *HaystackError) Error() string {
	return fmt.Sprintf("%s: %v (len %d vs len %d)", e.Op, e.Err, e.Left, e.Right)
}

// Unwrap returns the underlying error
func (e *HaystackError) Unwrap() error {
	return e.Err
}

// SameHaystack reports whether a and b are the same string value: same
// backing memory and same length. Equal contents in different memory do not
// count.
func SameHaystack(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || unsafe.StringData(a) == unsafe.StringData(b)
}

// CheckHaystacks returns a *HaystackError naming op unless a and b search the
// same haystack.
func CheckHaystacks(op string, a, b Searcher) error {
	ha, hb := a.Haystack(), b.Haystack()
	if SameHaystack(ha, hb) {
		return nil
	}
	return &HaystackError{Op: op, Left: len(ha), Right: len(hb), Err: ErrHaystackMismatch}
}
