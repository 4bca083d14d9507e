package adapter

import (
	"github.com/coregx/corepat/internal/cursor"
	"github.com/coregx/corepat/search"
)

// Then matches where a match of the first searcher is immediately followed
// by a match of the second one. The reported match spans both.
//
// A candidate of the first searcher that is not followed directly by a
// second match ends a reject at the candidate's end:
//
//	Then('a', 'b') over "abxaab": Match(0, 2), Reject(2, 4), Match(4, 6)
//	Then('\n', '\r') over "a\nb\n\r": Reject(0, 2), Reject(2, 3), Match(3, 5)
type Then struct {
	first, second search.Searcher
	cur           cursor.Cursor

	// lookahead match of second, valid when hasNext is set
	next       [2]int
	hasNext    bool
	secondDone bool
}

// NewThen combines first and second. Both must search the same haystack.
func NewThen(first, second search.Searcher) (*Then, error) {
	if err := search.CheckHaystacks("then", first, second); err != nil {
		return nil, err
	}
	return &Then{first: first, second: second}, nil
}

// Haystack returns the searched text.
func (s *Then) Haystack() string { return s.first.Haystack() }

// Next returns the next combined match or the reject preceding it.
func (s *Then) Next() search.Step {
	if step, ok := s.cur.Buffered(); ok {
		return step
	}
	for {
		start, mid, end, joined, ok := s.candidate()
		if !ok {
			return s.cur.Finish(len(s.first.Haystack()))
		}
		if joined {
			return s.cur.Match(start, end)
		}
		if mid > s.cur.Index() {
			return s.cur.RejectTo(mid)
		}
	}
}

// NextMatch skips to the next combined match.
func (s *Then) NextMatch() (start, end int, ok bool) {
	if step, buffered := s.cur.Buffered(); buffered {
		return step.Start, step.End, true
	}
	start, end, ok = s.find()
	if !ok {
		s.cur.Advance(len(s.first.Haystack()))
		return 0, 0, false
	}
	s.cur.Advance(end)
	return start, end, true
}

// find returns the next combined match at or after the cursor.
func (s *Then) find() (int, int, bool) {
	for {
		start, _, end, joined, ok := s.candidate()
		if !ok {
			return 0, 0, false
		}
		if joined {
			return start, end, true
		}
	}
}

// candidate returns the next match of the first searcher at or after the
// cursor. joined reports whether a second match starts at its end, in which
// case end is the end of the combined match.
func (s *Then) candidate() (start, mid, end int, joined, ok bool) {
	for {
		start, mid, ok = search.NextMatch(s.first)
		if !ok {
			return 0, 0, 0, false, false
		}
		if start < s.cur.Index() {
			// overlaps the previous combined match
			continue
		}
		nextStart, nextEnd, found := s.secondFrom(mid)
		if !found {
			// nothing can follow any later candidate either
			return 0, 0, 0, false, false
		}
		if nextStart == mid {
			s.hasNext = false
			return start, mid, nextEnd, true, true
		}
		return start, mid, 0, false, true
	}
}

// secondFrom returns the first match of the second searcher starting at or
// after pos. The match stays buffered until it is used for a combined match.
func (s *Then) secondFrom(pos int) (int, int, bool) {
	for !s.hasNext || s.next[0] < pos {
		if s.secondDone {
			return 0, 0, false
		}
		start, end, ok := search.NextMatch(s.second)
		if !ok {
			s.secondDone = true
			s.hasNext = false
			return 0, 0, false
		}
		s.next, s.hasNext = [2]int{start, end}, true
	}
	return s.next[0], s.next[1], true
}
