// Package memmem implements substring search for literal searchers.
//
// The finder anchors each probe on the rarest byte of the needle, found with
// an empirical frequency table, and lets strings.IndexByte (which the runtime
// vectorizes) skip to candidates. Candidates are then verified in place.
// Rare anchors keep the number of false candidates low on typical text and
// source code.
package memmem

import "strings"

// Finder searches for one fixed needle. A Finder is immutable and may be
// shared by any number of searchers.
type Finder struct {
	needle  string
	rare    byte
	rareIdx int
}

// NewFinder prepares a finder for needle.
func NewFinder(needle string) Finder {
	f := Finder{needle: needle}
	if needle != "" {
		f.rare, f.rareIdx = rareByte(needle)
	}
	return f
}

// Needle returns the needle the finder was built for.
func (f Finder) Needle() string { return f.needle }

// Index returns the first position >= from at which the needle starts in
// haystack, or -1. An empty needle matches at from.
func (f Finder) Index(haystack string, from int) int {
	n := len(f.needle)
	if n == 0 {
		if from <= len(haystack) {
			return from
		}
		return -1
	}
	if from+n > len(haystack) {
		return -1
	}
	if n == 1 {
		if i := strings.IndexByte(haystack[from:], f.rare); i >= 0 {
			return from + i
		}
		return -1
	}

	// The rare byte of a candidate starting at p sits at p+rareIdx.
	probe := from + f.rareIdx
	last := len(haystack) - n + f.rareIdx
	for probe <= last {
		i := strings.IndexByte(haystack[probe:last+1], f.rare)
		if i < 0 {
			return -1
		}
		probe += i
		start := probe - f.rareIdx
		if haystack[start:start+n] == f.needle {
			return start
		}
		probe++
	}
	return -1
}

// LastIndex returns the last position p with p+len(needle) <= to at which the
// needle starts in haystack, or -1. An empty needle matches at to.
func (f Finder) LastIndex(haystack string, to int) int {
	n := len(f.needle)
	if to > len(haystack) {
		to = len(haystack)
	}
	if n == 0 {
		if to >= 0 {
			return to
		}
		return -1
	}
	if n > to {
		return -1
	}

	first := f.rareIdx
	probe := to - n + f.rareIdx
	for probe >= first {
		i := strings.LastIndexByte(haystack[first:probe+1], f.rare)
		if i < 0 {
			return -1
		}
		probe = first + i
		start := probe - f.rareIdx
		if haystack[start:start+n] == f.needle {
			return start
		}
		probe--
	}
	return -1
}

// rareByte returns the rarest byte in needle and its position. Ties keep the
// earliest position.
func rareByte(needle string) (byte, int) {
	best, idx := needle[0], 0
	rank := frequencies[best]
	for i := 1; i < len(needle); i++ {
		if r := frequencies[needle[i]]; r < rank {
			best, idx, rank = needle[i], i, r
		}
	}
	return best, idx
}
