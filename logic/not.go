// Package logic implements the boolean combinators: Not, the Or family and
// the derived And and Nor.
//
// Or interleaves the matches of two searchers by position. When two candidate
// matches conflict, a TieBreak decides which one is reported. And and Nor are
// not independent algorithms; they are compositions of Or and Not:
//
//	Nor(a, b) = Not(Or(a, b))
//	And(a, b) = Nor(Not(a), Not(b))
package logic

import "github.com/coregx/corepat/search"

// Not swaps Match and Reject on every step of its child.
type Not struct {
	searcher search.Searcher
}

// NewNot returns the complement of s.
func NewNot(s search.Searcher) *Not {
	return &Not{searcher: s}
}

// Haystack returns the searched text.
func (s *Not) Haystack() string { return s.searcher.Haystack() }

// Next returns the child's next step with its kind swapped.
func (s *Not) Next() search.Step {
	return s.searcher.Next().Invert()
}

// NextMatch returns the child's next reject.
func (s *Not) NextMatch() (start, end int, ok bool) {
	return search.NextReject(s.searcher)
}

// NextReject returns the child's next match.
func (s *Not) NextReject() (start, end int, ok bool) {
	return search.NextMatch(s.searcher)
}

// ReverseNot is Not for reverse searchers.
type ReverseNot struct {
	*Not
	rev search.ReverseSearcher
}

// NewReverseNot returns the complement of s.
func NewReverseNot(s search.ReverseSearcher) *ReverseNot {
	return &ReverseNot{Not: NewNot(s), rev: s}
}

// NextBack returns the child's next backward step with its kind swapped.
func (s *ReverseNot) NextBack() search.Step {
	return s.rev.NextBack().Invert()
}

// NextMatchBack returns the child's next reject from the back.
func (s *ReverseNot) NextMatchBack() (start, end int, ok bool) {
	return search.NextRejectBack(s.rev)
}

// NextRejectBack returns the child's next match from the back.
func (s *ReverseNot) NextRejectBack() (start, end int, ok bool) {
	return search.NextMatchBack(s.rev)
}

// Complement returns a ReverseNot when s can search backwards and a Not
// otherwise.
func Complement(s search.Searcher) search.Searcher {
	if r, ok := s.(search.ReverseSearcher); ok {
		return NewReverseNot(r)
	}
	return NewNot(s)
}
