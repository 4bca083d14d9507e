package adapter

import (
	"github.com/coregx/corepat/internal/cursor"
	"github.com/coregx/corepat/search"
)

// Simplify reports the child's matches unchanged and everything between them
// as one Reject, so a Reject is always followed by a Match or Done.
//
// The child is only asked for matches, which lets literal children skip
// through the haystack with their substring search.
type Simplify struct {
	searcher search.Searcher
	cur      cursor.Cursor
}

// NewSimplify wraps s.
func NewSimplify(s search.Searcher) *Simplify {
	return &Simplify{searcher: s}
}

// Haystack returns the searched text.
func (s *Simplify) Haystack() string { return s.searcher.Haystack() }

// Next returns the next match or the maximal reject preceding it.
func (s *Simplify) Next() search.Step {
	if step, ok := s.cur.Buffered(); ok {
		return step
	}
	start, end, ok := search.NextMatch(s.searcher)
	if !ok {
		return s.cur.Finish(len(s.searcher.Haystack()))
	}
	return s.cur.Match(start, end)
}

// NextMatch skips the rejects.
func (s *Simplify) NextMatch() (start, end int, ok bool) {
	if step, buffered := s.cur.Buffered(); buffered {
		return step.Start, step.End, true
	}
	start, end, ok = search.NextMatch(s.searcher)
	if !ok {
		s.cur.Advance(len(s.searcher.Haystack()))
		return 0, 0, false
	}
	s.cur.Advance(end)
	return start, end, true
}
