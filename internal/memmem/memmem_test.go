package memmem

import (
	"strings"
	"testing"
)

// naiveIndex is the reference implementation for Index
func naiveIndex(h, n string, from int) int {
	if from > len(h) {
		return -1
	}
	if i := strings.Index(h[from:], n); i >= 0 {
		return from + i
	}
	return -1
}

// naiveLastIndex is the reference implementation for LastIndex
func naiveLastIndex(h, n string, to int) int {
	if to > len(h) {
		to = len(h)
	}
	if to < 0 {
		return -1
	}
	return strings.LastIndex(h[:to], n)
}

// TestIndex tests forward search against strings.Index
func TestIndex(t *testing.T) {
	tests := []struct {
		haystack, needle string
	}{
		{"hello world", "o"},
		{"hello world", "world"},
		{"hello world", "xyz"},
		{"abcaabbaab", "ab"},
		{"aaaaaaaa", "aa"},
		{"Märy häd ä little lämb", "ä"},
		{"Märy häd ä little lämb", "lämb"},
		{"", "a"},
		{"abc", ""},
		{"ab", "abc"},
		{"qqqzqqqz", "qz"},
	}

	for _, tt := range tests {
		f := NewFinder(tt.needle)
		for from := 0; from <= len(tt.haystack); from++ {
			want := naiveIndex(tt.haystack, tt.needle, from)
			if got := f.Index(tt.haystack, from); got != want {
				t.Errorf("Index(%q, %q, %d) = %d, want %d", tt.haystack, tt.needle, from, got, want)
			}
		}
		for to := 0; to <= len(tt.haystack); to++ {
			want := naiveLastIndex(tt.haystack, tt.needle, to)
			if got := f.LastIndex(tt.haystack, to); got != want {
				t.Errorf("LastIndex(%q, %q, %d) = %d, want %d", tt.haystack, tt.needle, to, got, want)
			}
		}
	}
}

// TestRareByte tests anchor selection
func TestRareByte(t *testing.T) {
	tests := []struct {
		needle string
		want   byte
		idx    int
	}{
		{"a", 'a', 0},
		{"the", 'h', 1},
		{"@home", '@', 0},
		{"size", 'z', 2},
		{"ä", 0xC3, 0},
	}
	for _, tt := range tests {
		b, i := rareByte(tt.needle)
		if b != tt.want || i != tt.idx {
			t.Errorf("rareByte(%q) = %q@%d, want %q@%d", tt.needle, b, i, tt.want, tt.idx)
		}
	}
}

// FuzzIndex compares Finder with the strings package
func FuzzIndex(f *testing.F) {
	f.Add("hello world", "wor", 0)
	f.Add("aaaa", "aa", 1)
	f.Add("xäx", "ä", 0)

	f.Fuzz(func(t *testing.T, haystack, needle string, from int) {
		if from < 0 || from > len(haystack) {
			return
		}
		finder := NewFinder(needle)
		if got, want := finder.Index(haystack, from), naiveIndex(haystack, needle, from); got != want {
			t.Fatalf("Index(%q, %q, %d) = %d, want %d", haystack, needle, from, got, want)
		}
		if got, want := finder.LastIndex(haystack, from), naiveLastIndex(haystack, needle, from); got != want {
			t.Fatalf("LastIndex(%q, %q, %d) = %d, want %d", haystack, needle, from, got, want)
		}
	})
}
