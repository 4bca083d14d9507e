// Package span provides the half-open byte interval used to reason about
// candidate matches.
//
// A Range is always stored normalized (start <= end), so callers may build
// one from bounds in either order:
//
//	r := span.New(6, 3) // [3, 6)
//	r.Len()             // 3
//
// Zero-length ranges are empty and never intersect anything, including
// themselves.
package span

import "fmt"

// Range is a half-open interval [start, end) of byte offsets.
type Range struct {
	start int
	end   int
}

// New returns the range covering the bounds a and b, in whichever order they
// were given.
func New(a, b int) Range {
	if a > b {
		a, b = b, a
	}
	return Range{start: a, end: b}
}

// Start returns the inclusive lower bound.
func (r Range) Start() int { return r.start }

// End returns the exclusive upper bound.
func (r Range) End() int { return r.end }

// Bounds returns start and end as a pair.
func (r Range) Bounds() (int, int) { return r.start, r.end }

// Len returns the number of offsets covered by the range.
func (r Range) Len() int {
	return max(r.start, r.end) - min(r.start, r.end)
}

// IsEmpty reports whether the range covers no offsets.
func (r Range) IsEmpty() bool {
	return r.Len() == 0
}

// Contains reports whether offset i lies inside the range.
func (r Range) Contains(i int) bool {
	return r.start <= i && i < r.end
}

// Intersect returns the overlap of r and other.
//
// The intersection can be thought of like this:
//
//	r      : 1 2 3 4 5
//	other  :     3 4 5 6 7 8
//	result :     3 4 5
//
// ok is false when either range is empty or when they share no offset.
// Intersect is commutative, and r.Intersect(r) == (r, true) for any non-empty r.
func (r Range) Intersect(other Range) (result Range, ok bool) {
	if other.start >= r.end || r.start >= other.end || r.IsEmpty() || other.IsEmpty() {
		return Range{}, false
	}
	return Range{start: max(r.start, other.start), end: min(r.end, other.end)}, true
}

// Overlaps reports whether r and other intersect.
func (r Range) Overlaps(other Range) bool {
	_, ok := r.Intersect(other)
	return ok
}

// String returns the range in interval notation, e.g. "[3, 6)".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.start, r.end)
}
