package search_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/corepat/internal/searchtest"
	"github.com/coregx/corepat/literal"
	"github.com/coregx/corepat/search"
)

func TestStep(t *testing.T) {
	tests := []struct {
		step   search.Step
		str    string
		length int
		invert search.Step
	}{
		{search.MatchStep(0, 3), "Match(0, 3)", 3, search.RejectStep(0, 3)},
		{search.RejectStep(2, 2), "Reject(2, 2)", 0, search.MatchStep(2, 2)},
		{search.DoneStep(), "Done", 0, search.DoneStep()},
	}
	for _, tt := range tests {
		if got := tt.step.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.step.Len(); got != tt.length {
			t.Errorf("%v.Len() = %d, want %d", tt.step, got, tt.length)
		}
		if got := tt.step.Invert(); got != tt.invert {
			t.Errorf("%v.Invert() = %v, want %v", tt.step, got, tt.invert)
		}
	}

	var zero search.Step
	if !zero.IsDone() {
		t.Error("zero Step is not Done")
	}
	if got := search.Kind(7).String(); got != "Kind(7)" {
		t.Errorf("Kind(7).String() = %q", got)
	}
}

// stepOnly hides the fast paths of a searcher.
type stepOnly struct{ search.ReverseSearcher }

func TestNextMatchFallback(t *testing.T) {
	h := "xxabyyab"
	fast := search.Matches(literal.NewStr(h, "ab"), -1)
	slow := search.Matches(stepOnly{literal.NewStr(h, "ab")}, -1)
	if len(fast) != 2 || len(slow) != 2 || fast[0] != slow[0] || fast[1] != slow[1] {
		t.Errorf("fast %v, slow %v", fast, slow)
	}

	s := stepOnly{literal.NewStr(h, "ab")}
	if start, end, ok := search.NextReject(s); !ok || start != 0 || end != 2 {
		t.Errorf("NextReject() = %d, %d, %v", start, end, ok)
	}
	if start, end, ok := search.NextMatchBack(s); !ok || start != 6 || end != 8 {
		t.Errorf("NextMatchBack() = %d, %d, %v", start, end, ok)
	}
	if start, end, ok := search.NextRejectBack(s); !ok || start != 4 || end != 6 {
		t.Errorf("NextRejectBack() = %d, %d, %v", start, end, ok)
	}
}

func TestMatchesLimit(t *testing.T) {
	s := literal.NewStr("ababab", "ab")
	if got := search.Matches(s, 2); len(got) != 2 {
		t.Fatalf("Matches(s, 2) = %v", got)
	}
	if got := search.Matches(s, -1); len(got) != 1 || got[0] != [2]int{4, 6} {
		t.Errorf("remaining matches = %v", got)
	}
}

func TestCount(t *testing.T) {
	matches, rejects := search.Count(literal.NewChar("abcab", 'a'))
	if matches != 2 || rejects != 3 {
		t.Errorf("Count() = %d, %d, want 2, 3", matches, rejects)
	}
}

func TestCollectBack(t *testing.T) {
	got := search.CollectBack(literal.NewStr("xab", "ab"))
	want := []search.Step{searchtest.M(1, 3), searchtest.R(0, 1)}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("CollectBack() = %v, want %v", got, want)
	}
}

func TestSameHaystack(t *testing.T) {
	h := strings.Repeat("ab", 4)
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"same value", h, h, true},
		{"copy", h, strings.Clone(h), false},
		{"prefix", h, h[:4], false},
		{"suffix", h, h[4:], false},
		{"both empty", "", h[:0], true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := search.SameHaystack(tt.a, tt.b); got != tt.want {
				t.Errorf("SameHaystack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckHaystacks(t *testing.T) {
	h := "haystack"
	if err := search.CheckHaystacks("or", literal.NewStr(h, "a"), literal.NewChar(h, 'a')); err != nil {
		t.Errorf("same haystack: %v", err)
	}

	err := search.CheckHaystacks("or", literal.NewStr(h, "a"), literal.NewStr(h[1:], "a"))
	var herr *search.HaystackError
	if !errors.As(err, &herr) {
		t.Fatalf("err = %v, want *HaystackError", err)
	}
	if herr.Op != "or" || herr.Left != 8 || herr.Right != 7 {
		t.Errorf("HaystackError = %+v", herr)
	}
	if !errors.Is(err, search.ErrHaystackMismatch) {
		t.Error("error does not wrap ErrHaystackMismatch")
	}
	if got := err.Error(); got != "or: searchers do not share one haystack (len 8 vs len 7)" {
		t.Errorf("Error() = %q", got)
	}
}
