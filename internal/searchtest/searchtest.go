// Package searchtest holds assertions shared by the searcher test suites.
package searchtest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/corepat/search"
)

// Boundaries returns, for every offset 0..len(h), whether a step may start or
// end there. Offsets inside a multi-byte rune are invalid; bytes of invalid
// UTF-8 are treated as one-byte runes, like ranging over the string does.
func Boundaries(h string) []bool {
	ok := make([]bool, len(h)+1)
	for i := range h {
		ok[i] = true
	}
	ok[len(h)] = true
	return ok
}

// AssertPartition drains s and checks that its steps partition the haystack:
// they are contiguous, start at 0, end at len(haystack), lie on rune
// boundaries, and are followed by Done on every further call.
func AssertPartition(t testing.TB, s search.Searcher) []search.Step {
	t.Helper()

	h := s.Haystack()
	valid := Boundaries(h)
	var steps []search.Step
	last := 0
	for i := 0; ; i++ {
		step := s.Next()
		if step.IsDone() {
			break
		}
		if i > 4*len(h)+8 {
			t.Fatalf("searcher did not terminate after %d steps on %q", i, h)
		}
		steps = append(steps, step)
		if step.Start > step.End {
			t.Fatalf("step %v is inverted (haystack %q)", step, h)
		}
		if step.Start != last {
			t.Fatalf("step %v does not continue at %d (haystack %q, steps %v)", step, last, h, steps)
		}
		if step.End > len(h) {
			t.Fatalf("step %v runs past the haystack end %d", step, len(h))
		}
		if !valid[step.Start] || !valid[step.End] {
			t.Fatalf("step %v splits a rune in %q", step, h)
		}
		last = step.End
	}
	if last != len(h) {
		t.Fatalf("steps end at %d, haystack %q has length %d (steps %v)", last, h, len(h), steps)
	}
	for range 3 {
		if step := s.Next(); !step.IsDone() {
			t.Fatalf("got %v after Done", step)
		}
	}
	return steps
}

// AssertBackPartition is AssertPartition for NextBack.
func AssertBackPartition(t testing.TB, s search.ReverseSearcher) []search.Step {
	t.Helper()

	h := s.Haystack()
	valid := Boundaries(h)
	var steps []search.Step
	last := len(h)
	for i := 0; ; i++ {
		step := s.NextBack()
		if step.IsDone() {
			break
		}
		if i > 4*len(h)+8 {
			t.Fatalf("searcher did not terminate after %d back steps on %q", i, h)
		}
		steps = append(steps, step)
		if step.Start > step.End || step.End != last || !valid[step.Start] {
			t.Fatalf("back step %v does not continue at %d (haystack %q)", step, last, h)
		}
		last = step.Start
	}
	if last != 0 {
		t.Fatalf("back steps stop at %d, want 0 (haystack %q)", last, h)
	}
	for range 3 {
		if step := s.NextBack(); !step.IsDone() {
			t.Fatalf("got %v after back Done", step)
		}
	}
	return steps
}

// AssertSteps drains s and compares its steps, Done excluded, with want.
func AssertSteps(t testing.TB, s search.Searcher, want ...search.Step) {
	t.Helper()
	if diff := cmp.Diff(want, search.Collect(s)); diff != "" {
		t.Errorf("steps mismatch for %q (-want +got):\n%s", s.Haystack(), diff)
	}
}

// AssertSameSteps drains a and b in lockstep and requires identical steps.
func AssertSameSteps(t testing.TB, a, b search.Searcher) {
	t.Helper()
	if diff := cmp.Diff(search.Collect(a), search.Collect(b)); diff != "" {
		t.Errorf("step sequences differ for %q (-a +b):\n%s", a.Haystack(), diff)
	}
}

// AssertSameMatches requires a and b to report the same matches.
func AssertSameMatches(t testing.TB, a, b search.Searcher) {
	t.Helper()
	if diff := cmp.Diff(search.Matches(a, -1), search.Matches(b, -1)); diff != "" {
		t.Errorf("matches differ for %q (-a +b):\n%s", a.Haystack(), diff)
	}
}

// M is shorthand for search.MatchStep in expectation tables.
func M(start, end int) search.Step { return search.MatchStep(start, end) }

// R is shorthand for search.RejectStep in expectation tables.
func R(start, end int) search.Step { return search.RejectStep(start, end) }
