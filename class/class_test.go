package class

import (
	"testing"
	"unicode"

	"github.com/coregx/corepat/internal/searchtest"
	"github.com/coregx/corepat/search"
)

var (
	M = searchtest.M
	R = searchtest.R
)

// TestClassMatches tests every class variant
func TestClassMatches(t *testing.T) {
	tests := []struct {
		name  string
		class Class
		yes   string
		no    string
	}{
		{"none", Class{}, "", "a0 ä"},
		{"any", Any, "a0 ä\x00", ""},
		{"rune", Rune('ä'), "ä", "aA"},
		{"ascii", ASCII("abc"), "abc", "dA ä"},
		{"ascii range", ASCIIRange('0', '9'), "0123456789", "a/:"},
		{"ranges", Ranges('a', 'f', 'α', 'ω'), "afαβω", "gzA"},
		{"ranges unsorted", Ranges('x', 'z', 'a', 'c'), "abcxyz", "dw"},
		{"ranges odd", Ranges('a', 'c', 'q'), "abcq", "dr"},
		{"func", Func(unicode.IsUpper), "AÄZ", "aä0"},
		{"nil func", Func(nil), "", "a"},
		{"digit", Digit, "09", "a٣"},
		{"word", Word, "azAZ09_", "-ä "},
		{"space", Space, " \t\n\r\f", "a\v"},
		{"negated", Digit.Negate(), "a ä", "05"},
		{"any of", AnyOf(Rune('ä'), Digit, Func(unicode.IsUpper)), "ä5Q", "aö"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range tt.yes {
				if !tt.class.Matches(r) {
					t.Errorf("%v.Matches(%q) = false, want true", tt.class, r)
				}
			}
			for _, r := range tt.no {
				if tt.class.Matches(r) {
					t.Errorf("%v.Matches(%q) = true, want false", tt.class, r)
				}
			}
		})
	}
}

// TestClassOr tests how compound classes are accumulated
func TestClassOr(t *testing.T) {
	merged := ASCII("a").Or(ASCII("b"))
	if merged.Kind() != KindASCII {
		t.Errorf("ASCII|ASCII kind = %v, want KindASCII", merged.Kind())
	}

	flat := Rune('x').Or(Rune('y')).Or(Rune('z'))
	if flat.Kind() != KindAnyOf || len(flat.any) != 3 {
		t.Errorf("chained Or = %v, want three flat members", flat)
	}

	if got := (Class{}).Or(Rune('q')); got.Kind() != KindRune {
		t.Errorf("none|rune kind = %v, want KindRune", got.Kind())
	}

	neg := Digit.Negate().Or(ASCII("5"))
	if !neg.Matches('5') || !neg.Matches('a') || neg.Matches('4') {
		t.Errorf("negated member lost its negation: %v", neg)
	}
}

// TestRangesMerge tests that overlapping ranges are merged
func TestRangesMerge(t *testing.T) {
	c := Ranges('a', 'c', 'b', 'f', 'g', 'h', 'x', 'z')
	want := []rune{'a', 'h', 'x', 'z'}
	if len(c.ranges) != len(want) {
		t.Fatalf("ranges = %q, want %q", c.ranges, want)
	}
	for i := range want {
		if c.ranges[i] != want[i] {
			t.Errorf("ranges = %q, want %q", c.ranges, want)
		}
	}
	if got := c.String(); got != "[a-hx-z]" {
		t.Errorf("String() = %q", got)
	}
}

// TestSearcher tests per-rune steps of a predicate
func TestSearcher(t *testing.T) {
	searchtest.AssertSteps(t, NewSearcher("heLLo", Func(unicode.IsLower)),
		M(0, 1), M(1, 2), R(2, 3), R(3, 4), M(4, 5))

	searchtest.AssertSteps(t, NewSearcher("1ä2", Digit),
		M(0, 1), R(1, 3), M(3, 4))

	back := NewSearcher("1ä2", Digit)
	if got := back.NextBack(); got != M(3, 4) {
		t.Errorf("NextBack() = %v", got)
	}
	if got := back.Next(); got != M(0, 1) {
		t.Errorf("Next() = %v", got)
	}
	if got := back.NextBack(); got != R(1, 3) {
		t.Errorf("NextBack() = %v", got)
	}
	if got := back.Next(); !got.IsDone() {
		t.Errorf("Next() = %v, want Done", got)
	}

	for _, h := range []string{"", "abc", "a\xffb", "äöü 123"} {
		searchtest.AssertPartition(t, NewSearcher(h, Word))
		searchtest.AssertBackPartition(t, NewSearcher(h, Word))
	}
}

// TestSearcherNextMatch tests the ASCII table fast path against stepping
func TestSearcherNextMatch(t *testing.T) {
	for _, h := range []string{"", "a1b2", "ää1", "\xff9\xfe", "no digits"} {
		fast := search.Matches(NewSearcher(h, Digit), -1)
		slow := search.Matches(NewSearcher(h, Func(func(r rune) bool { return r >= '0' && r <= '9' })), -1)
		if len(fast) != len(slow) {
			t.Fatalf("%q: fast %v, slow %v", h, fast, slow)
		}
		for i := range fast {
			if fast[i] != slow[i] {
				t.Errorf("%q: fast %v, slow %v", h, fast, slow)
			}
		}
	}
}

// TestStateful tests a predicate carrying state between runes
func TestStateful(t *testing.T) {
	p := Stateful(false, func(r rune, inside *bool) bool {
		if r == '(' && !*inside {
			*inside = true
		} else if r == ')' && *inside {
			*inside = false
			return false
		}
		return !*inside
	})

	want := []search.Step{
		M(0, 1), M(1, 2), M(2, 3),
		R(3, 4), R(4, 5), R(5, 6), R(6, 7), R(7, 8),
		M(8, 9),
	}
	// twice: each searcher starts from the initial state
	searchtest.AssertSteps(t, p.Searcher("hey((hw)#"), want...)
	searchtest.AssertSteps(t, p.Searcher("hey((hw)#"), want...)
}
