package literal

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/corepat/search"
)

// CharSearcher reports every rune of the haystack as its own step: Match when
// it equals the needle, Reject otherwise. Bytes of invalid UTF-8 are stepped
// one at a time and never match.
type CharSearcher struct {
	haystack    string
	needle      rune
	enc         string
	front, back int

	// set when enc cannot be searched for directly
	stepwise bool
}

// NewChar returns a searcher for the rune r in haystack.
func NewChar(haystack string, r rune) *CharSearcher {
	return &CharSearcher{
		haystack: haystack,
		needle:   r,
		enc:      string(r),
		back:     len(haystack),
		// U+FFFD must be told apart from invalid bytes, and an invalid
		// rune encodes as U+FFFD without ever matching
		stepwise: r == utf8.RuneError || !utf8.ValidRune(r),
	}
}

// Haystack returns the searched text.
func (s *CharSearcher) Haystack() string { return s.haystack }

func (s *CharSearcher) is(r rune, w int) bool {
	return r == s.needle && w == len(s.enc)
}

// Next returns the step for the next rune.
func (s *CharSearcher) Next() search.Step {
	if s.front >= s.back {
		return search.DoneStep()
	}
	start := s.front
	r, w := utf8.DecodeRuneInString(s.haystack[start:s.back])
	s.front += w
	if s.is(r, w) {
		return search.MatchStep(start, s.front)
	}
	return search.RejectStep(start, s.front)
}

// NextBack returns the step for the last unvisited rune.
func (s *CharSearcher) NextBack() search.Step {
	if s.front >= s.back {
		return search.DoneStep()
	}
	end := s.back
	r, w := utf8.DecodeLastRuneInString(s.haystack[s.front:end])
	s.back -= w
	if s.is(r, w) {
		return search.MatchStep(s.back, end)
	}
	return search.RejectStep(s.back, end)
}

// NextMatch jumps to the next occurrence of the rune.
func (s *CharSearcher) NextMatch() (start, end int, ok bool) {
	if s.stepwise || s.front >= s.back {
		return search.StepMatch(s)
	}
	i := strings.Index(s.haystack[s.front:s.back], s.enc)
	if i < 0 {
		s.front = s.back
		return 0, 0, false
	}
	start = s.front + i
	s.front = start + len(s.enc)
	return start, s.front, true
}

// NextMatchBack jumps to the previous occurrence of the rune.
func (s *CharSearcher) NextMatchBack() (start, end int, ok bool) {
	if s.stepwise || s.front >= s.back {
		return search.StepMatchBack(s)
	}
	i := strings.LastIndex(s.haystack[s.front:s.back], s.enc)
	if i < 0 {
		s.back = s.front
		return 0, 0, false
	}
	s.back = s.front + i
	return s.back, s.back + len(s.enc), true
}
