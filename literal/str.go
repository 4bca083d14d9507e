package literal

import (
	"unicode/utf8"

	"github.com/coregx/corepat/internal/memmem"
	"github.com/coregx/corepat/search"
)

// StrSearcher reports the non-overlapping occurrences of a literal string.
//
// An empty needle matches at every rune boundary:
//
//	Match(0, 0), Reject(0, 1), Match(1, 1), ..., Match(n, n)
type StrSearcher struct {
	haystack string
	finder   memmem.Finder

	front, back int

	// next known occurrence at or after front, -1 when unknown
	pending int
	// same for the back direction, as a start offset
	pendingBack int

	// empty needle: whether the zero-length match at front/back was emitted
	emptyFront, emptyBack bool
}

// NewStr returns a searcher for needle in haystack.
func NewStr(haystack, needle string) *StrSearcher {
	return NewStrFinder(haystack, memmem.NewFinder(needle))
}

// NewStrFinder is NewStr with a finder prepared once per pattern.
func NewStrFinder(haystack string, f memmem.Finder) *StrSearcher {
	return &StrSearcher{
		haystack:    haystack,
		finder:      f,
		back:        len(haystack),
		pending:     -1,
		pendingBack: -1,
	}
}

// Haystack returns the searched text.
func (s *StrSearcher) Haystack() string { return s.haystack }

// Needle returns the literal being searched for.
func (s *StrSearcher) Needle() string { return s.finder.Needle() }

// Next returns the next forward step.
func (s *StrSearcher) Next() search.Step {
	n := len(s.finder.Needle())
	if n == 0 {
		return s.nextEmpty()
	}
	if s.front >= s.back {
		return search.DoneStep()
	}

	at := s.pending
	if at < 0 || at+n > s.back {
		at = s.finder.Index(s.haystack[:s.back], s.front)
	}
	s.pending = -1

	switch {
	case at == s.front:
		s.front += n
		return search.MatchStep(at, s.front)
	case at > s.front:
		start := s.front
		s.front, s.pending = at, at
		return search.RejectStep(start, at)
	default:
		start := s.front
		s.front = s.back
		return search.RejectStep(start, s.back)
	}
}

// NextMatch skips directly to the next occurrence.
func (s *StrSearcher) NextMatch() (start, end int, ok bool) {
	n := len(s.finder.Needle())
	if n == 0 {
		return search.StepMatch(s)
	}
	if s.front >= s.back {
		return 0, 0, false
	}
	at := s.pending
	if at < 0 || at+n > s.back {
		at = s.finder.Index(s.haystack[:s.back], s.front)
	}
	s.pending = -1
	if at < 0 {
		s.front = s.back
		return 0, 0, false
	}
	s.front = at + n
	return at, s.front, true
}

func (s *StrSearcher) nextEmpty() search.Step {
	if !s.emptyFront {
		s.emptyFront = true
		return search.MatchStep(s.front, s.front)
	}
	if s.front >= s.back {
		return search.DoneStep()
	}
	start := s.front
	_, w := utf8.DecodeRuneInString(s.haystack[s.front:s.back])
	s.front += w
	s.emptyFront = false
	return search.RejectStep(start, s.front)
}

// NextBack returns the next step from the back.
func (s *StrSearcher) NextBack() search.Step {
	n := len(s.finder.Needle())
	if n == 0 {
		return s.nextEmptyBack()
	}
	if s.front >= s.back {
		return search.DoneStep()
	}

	at := s.pendingBack
	if at < 0 {
		at = s.finder.LastIndex(s.haystack, s.back)
	}
	s.pendingBack = -1

	switch {
	case at >= s.front && at+n == s.back:
		end := s.back
		s.back = at
		return search.MatchStep(at, end)
	case at >= s.front:
		end := s.back
		s.back, s.pendingBack = at+n, at
		return search.RejectStep(at+n, end)
	default:
		end := s.back
		s.back = s.front
		return search.RejectStep(s.front, end)
	}
}

// NextMatchBack skips directly to the previous occurrence.
func (s *StrSearcher) NextMatchBack() (start, end int, ok bool) {
	n := len(s.finder.Needle())
	if n == 0 {
		return search.StepMatchBack(s)
	}
	if s.front >= s.back {
		return 0, 0, false
	}
	at := s.pendingBack
	if at < 0 {
		at = s.finder.LastIndex(s.haystack, s.back)
	}
	s.pendingBack = -1
	if at < s.front {
		s.back = s.front
		return 0, 0, false
	}
	s.back = at
	return at, at + n, true
}

func (s *StrSearcher) nextEmptyBack() search.Step {
	if !s.emptyBack {
		s.emptyBack = true
		return search.MatchStep(s.back, s.back)
	}
	if s.front >= s.back {
		return search.DoneStep()
	}
	end := s.back
	_, w := utf8.DecodeLastRuneInString(s.haystack[s.front:s.back])
	s.back -= w
	s.emptyBack = false
	return search.RejectStep(s.back, end)
}
