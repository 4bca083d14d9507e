package logic

import (
	"github.com/coregx/corepat/internal/cursor"
	"github.com/coregx/corepat/search"
	"github.com/coregx/corepat/span"
)

// Side names one operand of an Or.
type Side uint8

const (
	// Left is the first operand.
	Left Side = iota
	// Right is the second operand.
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// TieBreak picks which of two conflicting candidate matches is reported.
// a comes from the left operand and b from the right one.
type TieBreak func(a, b span.Range) Side

// PreferLeft always reports the left candidate.
func PreferLeft(_, _ span.Range) Side { return Left }

// PreferRight always reports the right candidate.
func PreferRight(_, _ span.Range) Side { return Right }

// PreferLonger reports the longer candidate, the left one on equal length.
func PreferLonger(a, b span.Range) Side {
	if b.Len() > a.Len() {
		return Right
	}
	return Left
}

// Or merges the matches of two searchers in haystack order.
//
// Two candidates conflict when their ranges intersect, when they are equal,
// or when they start at the same offset (zero-length candidates do not
// intersect anything). Of conflicting candidates only the one chosen by the
// TieBreak is reported; the other is dropped. Of disjoint candidates the
// earlier one is reported and the later one is kept for the next step.
// Candidates that start before the end of the last reported match are
// dropped.
type Or struct {
	a, b search.Searcher
	tie  TieBreak
	cur  cursor.Cursor

	// match read from a or b but not yet reported
	cached     span.Range
	cachedSide Side
	hasCached  bool
}

// NewOr combines a and b. A nil tie defaults to PreferLeft. Both searchers
// must search the same haystack.
func NewOr(a, b search.Searcher, tie TieBreak) (*Or, error) {
	if err := search.CheckHaystacks("or", a, b); err != nil {
		return nil, err
	}
	if tie == nil {
		tie = PreferLeft
	}
	return &Or{a: a, b: b, tie: tie}, nil
}

// NewLOr is NewOr with PreferLeft.
func NewLOr(a, b search.Searcher) (*Or, error) {
	return NewOr(a, b, PreferLeft)
}

// NewROr is NewOr with PreferRight.
func NewROr(a, b search.Searcher) (*Or, error) {
	return NewOr(a, b, PreferRight)
}

// Haystack returns the searched text.
func (s *Or) Haystack() string { return s.a.Haystack() }

// Next returns the next reported match or the reject preceding it.
func (s *Or) Next() search.Step {
	if step, ok := s.cur.Buffered(); ok {
		return step
	}
	r, ok := s.pick()
	if !ok {
		return s.cur.Finish(len(s.a.Haystack()))
	}
	return s.cur.Match(r.Start(), r.End())
}

// pick returns the next match to report.
func (s *Or) pick() (span.Range, bool) {
	a, aok := s.candidate(Left)
	b, bok := s.candidate(Right)

	switch {
	case aok && bok:
		_, overlap := a.Intersect(b)
		if overlap || a == b || a.Start() == b.Start() {
			if s.tie(a, b) == Right {
				return b, true
			}
			return a, true
		}
		if a.Start() < b.Start() {
			s.cache(Right, b)
			return a, true
		}
		s.cache(Left, a)
		return b, true
	case aok:
		return a, true
	case bok:
		return b, true
	}
	return span.Range{}, false
}

// candidate returns the next usable match of one side: the cached one if it
// belongs to that side, otherwise the child's next match. Matches starting
// before the cursor are skipped.
func (s *Or) candidate(side Side) (span.Range, bool) {
	if s.hasCached && s.cachedSide == side {
		s.hasCached = false
		if s.cached.Start() >= s.cur.Index() {
			return s.cached, true
		}
	}
	child := s.a
	if side == Right {
		child = s.b
	}
	for {
		start, end, ok := search.NextMatch(child)
		if !ok {
			return span.Range{}, false
		}
		if start >= s.cur.Index() {
			return span.New(start, end), true
		}
	}
}

func (s *Or) cache(side Side, r span.Range) {
	s.cached, s.cachedSide, s.hasCached = r, side, true
}
