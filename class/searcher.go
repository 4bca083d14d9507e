package class

import (
	"unicode/utf8"

	"github.com/coregx/corepat/search"
)

// Searcher evaluates a predicate on every rune and reports each rune as its
// own step. It supports forward and backward steps over one shared window.
// Bytes of invalid UTF-8 are passed to the predicate as utf8.RuneError, one
// byte at a time.
type Searcher struct {
	haystack    string
	pred        func(rune) bool
	table       *Class // non-nil for plain ASCII tables, enables byte scans
	front, back int
}

// NewSearcher returns a searcher for c over haystack.
func NewSearcher(haystack string, c Class) *Searcher {
	s := &Searcher{haystack: haystack, pred: c.Matches, back: len(haystack)}
	if c.kind == KindASCII && !c.negated {
		s.table = &c
	}
	return s
}

// NewFuncSearcher returns a searcher for an arbitrary predicate. The
// predicate is called exactly once per visited rune, in visiting order.
func NewFuncSearcher(haystack string, pred func(rune) bool) *Searcher {
	return &Searcher{haystack: haystack, pred: pred, back: len(haystack)}
}

// Haystack returns the searched text.
func (s *Searcher) Haystack() string { return s.haystack }

// Next returns the step for the next rune.
func (s *Searcher) Next() search.Step {
	if s.front >= s.back {
		return search.DoneStep()
	}
	start := s.front
	r, w := utf8.DecodeRuneInString(s.haystack[start:s.back])
	s.front += w
	if s.pred(r) {
		return search.MatchStep(start, s.front)
	}
	return search.RejectStep(start, s.front)
}

// NextBack returns the step for the last unvisited rune.
func (s *Searcher) NextBack() search.Step {
	if s.front >= s.back {
		return search.DoneStep()
	}
	end := s.back
	r, w := utf8.DecodeLastRuneInString(s.haystack[s.front:end])
	s.back -= w
	if s.pred(r) {
		return search.MatchStep(s.back, end)
	}
	return search.RejectStep(s.back, end)
}

// NextMatch skips to the next matching rune.
func (s *Searcher) NextMatch() (start, end int, ok bool) {
	if s.table == nil {
		return search.StepMatch(s)
	}
	// An ASCII byte is always a rune of its own, valid UTF-8 or not.
	for i := s.front; i < s.back; i++ {
		if b := s.haystack[i]; b < utf8.RuneSelf && s.table.asciiByte(b) {
			s.front = i + 1
			return i, i + 1, true
		}
	}
	s.front = s.back
	return 0, 0, false
}
