package adapter

import "github.com/coregx/corepat/search"

// Fused stops calling its child once the child returned Done.
type Fused struct {
	searcher  search.Searcher
	exhausted bool
}

// NewFused wraps s.
func NewFused(s search.Searcher) *Fused {
	return &Fused{searcher: s}
}

// Haystack returns the searched text.
func (s *Fused) Haystack() string { return s.searcher.Haystack() }

// Next returns the child's next step, or Done forever after the first Done.
func (s *Fused) Next() search.Step {
	if s.exhausted {
		return search.DoneStep()
	}
	step := s.searcher.Next()
	if step.IsDone() {
		s.exhausted = true
	}
	return step
}

// NextMatch forwards to the child's fast path until it is exhausted.
func (s *Fused) NextMatch() (start, end int, ok bool) {
	if s.exhausted {
		return 0, 0, false
	}
	start, end, ok = search.NextMatch(s.searcher)
	s.exhausted = !ok
	return start, end, ok
}

// Exhausted reports whether the forward direction has returned Done.
func (s *Fused) Exhausted() bool { return s.exhausted }

// Exhaust steps the searcher until it returns Done.
func (s *Fused) Exhaust() {
	for !s.Next().IsDone() {
	}
}

// ReverseFused is Fused for reverse searchers. The forward and backward
// directions are exhausted independently.
type ReverseFused struct {
	*Fused
	rev           search.ReverseSearcher
	exhaustedBack bool
}

// NewReverseFused wraps s.
func NewReverseFused(s search.ReverseSearcher) *ReverseFused {
	return &ReverseFused{Fused: NewFused(s), rev: s}
}

// NextBack returns the child's next backward step, or Done forever after the
// first backward Done.
func (s *ReverseFused) NextBack() search.Step {
	if s.exhaustedBack {
		return search.DoneStep()
	}
	step := s.rev.NextBack()
	if step.IsDone() {
		s.exhaustedBack = true
	}
	return step
}

// ExhaustedBack reports whether the backward direction has returned Done.
func (s *ReverseFused) ExhaustedBack() bool { return s.exhaustedBack }

// Fuse wraps s in a ReverseFused when it can search backwards and in a Fused
// otherwise.
func Fuse(s search.Searcher) search.Searcher {
	if r, ok := s.(search.ReverseSearcher); ok {
		return NewReverseFused(r)
	}
	return NewFused(s)
}
