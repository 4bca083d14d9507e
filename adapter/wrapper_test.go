package adapter

import (
	"testing"

	"github.com/coregx/corepat/class"
	"github.com/coregx/corepat/internal/searchtest"
	"github.com/coregx/corepat/literal"
	"github.com/coregx/corepat/search"
)

var (
	M = searchtest.M
	R = searchtest.R
)

// script replays fixed steps and misbehaves once they run out.
type script struct {
	haystack string
	steps    []search.Step
	calls    int
}

func (s *script) Haystack() string { return s.haystack }

func (s *script) Next() search.Step {
	s.calls++
	if len(s.steps) == 0 {
		return search.MatchStep(0, 0)
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	return step
}

func TestIndexed(t *testing.T) {
	h := "xaay"
	s := NewIndexed(literal.NewChar(h, 'a'))
	if s.Index() != 0 {
		t.Fatalf("initial Index() = %d", s.Index())
	}

	want := []int{1, 2, 3, 4, 4}
	for i, idx := range want {
		s.Next()
		if s.Index() != idx {
			t.Errorf("after step %d: Index() = %d, want %d", i, s.Index(), idx)
		}
	}

	s = NewIndexed(literal.NewChar(h, 'a'))
	if start, end, ok := s.NextMatch(); !ok || start != 1 || end != 2 || s.Index() != 2 {
		t.Errorf("NextMatch() = %d, %d, %v with Index() %d", start, end, ok, s.Index())
	}
	s.NextMatch()
	if _, _, ok := s.NextMatch(); ok || s.Index() != len(h) {
		t.Errorf("exhausted NextMatch() = %v with Index() %d", ok, s.Index())
	}
}

func TestFused(t *testing.T) {
	child := &script{haystack: "ab", steps: []search.Step{M(0, 1), R(1, 2), {}}}
	s := NewFused(child)

	searchtest.AssertPartition(t, s)
	if child.calls != 3 {
		t.Errorf("child called %d times, want 3", child.calls)
	}
	if !s.Exhausted() {
		t.Error("Exhausted() = false after Done")
	}
	if _, _, ok := s.NextMatch(); ok {
		t.Error("NextMatch() after Done reported a match")
	}
}

func TestFusedExhaust(t *testing.T) {
	s := NewFused(literal.NewStr("abcabc", "b"))
	s.Exhaust()
	if !s.Exhausted() {
		t.Fatal("Exhaust() left the searcher running")
	}
	if step := s.Next(); !step.IsDone() {
		t.Errorf("Next() after Exhaust() = %v", step)
	}
}

func TestReverseFused(t *testing.T) {
	s := NewReverseFused(literal.NewStr("abcab", "ab"))

	if got := s.NextBack(); got != M(3, 5) {
		t.Fatalf("NextBack() = %v", got)
	}
	if got := s.Next(); got != M(0, 2) {
		t.Fatalf("Next() = %v", got)
	}
	if got := s.NextBack(); got != R(2, 3) {
		t.Fatalf("NextBack() = %v", got)
	}
	for range 3 {
		if !s.NextBack().IsDone() || !s.Next().IsDone() {
			t.Fatal("directions did not stay exhausted")
		}
	}
	if !s.Exhausted() || !s.ExhaustedBack() {
		t.Error("exhaustion flags not set")
	}
}

func TestFuseKeepsDirection(t *testing.T) {
	if _, ok := Fuse(literal.NewStr("a", "a")).(search.ReverseSearcher); !ok {
		t.Error("Fuse dropped NextBack of a reverse searcher")
	}
	if _, ok := Fuse(NewLimit(literal.NewStr("a", "a"), 1)).(search.ReverseSearcher); ok {
		t.Error("Fuse added NextBack to a forward-only searcher")
	}
	if _, ok := Peek(class.NewSearcher("a", class.Digit)).(*ReversePeekable); !ok {
		t.Error("Peek dropped NextBack of a reverse searcher")
	}
}

func TestPeekable(t *testing.T) {
	s := NewPeekable(literal.NewStr("xabx", "ab"))

	for range 3 {
		if got := s.Peek(); got != R(0, 1) {
			t.Fatalf("Peek() = %v, want Reject(0, 1)", got)
		}
	}
	if got := s.Next(); got != R(0, 1) {
		t.Fatalf("Next() = %v after peeking", got)
	}
	if got := s.Peek(); got != M(1, 3) {
		t.Fatalf("Peek() = %v", got)
	}
	if start, end, ok := s.NextMatch(); !ok || start != 1 || end != 3 {
		t.Fatalf("NextMatch() = %d, %d, %v, want the peeked match", start, end, ok)
	}
	s.Peek()
	if _, _, ok := s.NextMatch(); ok {
		t.Error("NextMatch() found a match after a peeked trailing reject")
	}
}

func TestReversePeekable(t *testing.T) {
	s := NewReversePeekable(literal.NewStr("abxab", "ab"))

	if got := s.PeekBack(); got != M(3, 5) {
		t.Fatalf("PeekBack() = %v", got)
	}
	if got := s.Peek(); got != M(0, 2) {
		t.Fatalf("Peek() = %v", got)
	}
	if got := s.NextBack(); got != M(3, 5) {
		t.Fatalf("NextBack() = %v", got)
	}
	if got := s.NextBack(); got != R(2, 3) {
		t.Fatalf("NextBack() = %v", got)
	}
	if got := s.Next(); got != M(0, 2) {
		t.Fatalf("Next() = %v", got)
	}
	if !s.Next().IsDone() || !s.NextBack().IsDone() {
		t.Error("searcher not done after meeting in the middle")
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		s    func(h string) search.Searcher
		h    string
		want []search.Step
	}{
		{
			name: "char",
			s:    func(h string) search.Searcher { return literal.NewChar(h, 'a') },
			h:    "aabbbba",
			want: []search.Step{M(0, 1), M(1, 2), R(2, 6), M(6, 7)},
		},
		{
			name: "trailing reject",
			s:    func(h string) search.Searcher { return literal.NewChar(h, 'a') },
			h:    "abbb",
			want: []search.Step{M(0, 1), R(1, 4)},
		},
		{
			name: "no match",
			s:    func(h string) search.Searcher { return class.NewSearcher(h, class.Digit) },
			h:    "äöü",
			want: []search.Step{R(0, 6)},
		},
		{
			name: "empty needle",
			s:    func(h string) search.Searcher { return literal.NewStr(h, "") },
			h:    "ab",
			want: []search.Step{M(0, 0), R(0, 1), M(1, 1), R(1, 2), M(2, 2)},
		},
		{
			name: "empty haystack",
			s:    func(h string) search.Searcher { return literal.NewStr(h, "x") },
			h:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searchtest.AssertSteps(t, NewSimplify(tt.s(tt.h)), tt.want...)
			searchtest.AssertPartition(t, NewSimplify(tt.s(tt.h)))
		})
	}
}

func TestSimplifyNoConsecutiveRejects(t *testing.T) {
	h := "a1b22c333d"
	steps := searchtest.AssertPartition(t, NewSimplify(class.NewSearcher(h, class.Digit)))
	for i := 1; i < len(steps); i++ {
		if steps[i].IsReject() && steps[i-1].IsReject() {
			t.Errorf("consecutive rejects %v %v", steps[i-1], steps[i])
		}
	}
}
