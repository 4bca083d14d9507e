package adapter

import "github.com/coregx/corepat/search"

// Indexed passes steps through and remembers where the last one ended.
type Indexed struct {
	searcher search.Searcher
	index    int
}

// NewIndexed wraps s.
func NewIndexed(s search.Searcher) *Indexed {
	return &Indexed{searcher: s}
}

// Haystack returns the searched text.
func (s *Indexed) Haystack() string { return s.searcher.Haystack() }

// Index returns the end of the last Match or Reject, 0 before the first step.
func (s *Indexed) Index() int { return s.index }

// Next returns the child's next step.
func (s *Indexed) Next() search.Step {
	step := s.searcher.Next()
	if !step.IsDone() {
		s.index = step.End
	}
	return step
}

// NextMatch forwards to the child's fast path. When no match is left the
// child has consumed the haystack, so the index moves to its end.
func (s *Indexed) NextMatch() (start, end int, ok bool) {
	start, end, ok = search.NextMatch(s.searcher)
	if ok {
		s.index = end
	} else {
		s.index = len(s.searcher.Haystack())
	}
	return start, end, ok
}
