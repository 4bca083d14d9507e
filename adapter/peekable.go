package adapter

import "github.com/coregx/corepat/search"

// Peekable lets the caller look at the next step without consuming it.
type Peekable struct {
	searcher search.Searcher
	peeked   search.Step
	hasPeek  bool
}

// NewPeekable wraps s.
func NewPeekable(s search.Searcher) *Peekable {
	return &Peekable{searcher: s}
}

// Haystack returns the searched text.
func (s *Peekable) Haystack() string { return s.searcher.Haystack() }

// Peek returns the step the next call to Next will return. Repeated calls
// return the same step.
func (s *Peekable) Peek() search.Step {
	if !s.hasPeek {
		s.peeked, s.hasPeek = s.searcher.Next(), true
	}
	return s.peeked
}

// Next returns the peeked step, if any, and the child's next step otherwise.
func (s *Peekable) Next() search.Step {
	if s.hasPeek {
		s.hasPeek = false
		return s.peeked
	}
	return s.searcher.Next()
}

// NextMatch serves a peeked match first, then forwards to the child.
func (s *Peekable) NextMatch() (start, end int, ok bool) {
	if s.hasPeek {
		s.hasPeek = false
		switch s.peeked.Kind {
		case search.Match:
			return s.peeked.Start, s.peeked.End, true
		case search.Done:
			return 0, 0, false
		}
	}
	return search.NextMatch(s.searcher)
}

// ReversePeekable adds a one-step buffer at the back.
type ReversePeekable struct {
	*Peekable
	rev         search.ReverseSearcher
	peekedBack  search.Step
	hasPeekBack bool
}

// NewReversePeekable wraps s.
func NewReversePeekable(s search.ReverseSearcher) *ReversePeekable {
	return &ReversePeekable{Peekable: NewPeekable(s), rev: s}
}

// PeekBack returns the step the next call to NextBack will return.
func (s *ReversePeekable) PeekBack() search.Step {
	if !s.hasPeekBack {
		s.peekedBack, s.hasPeekBack = s.rev.NextBack(), true
	}
	return s.peekedBack
}

// NextBack returns the step peeked from the back, if any, and the child's
// next backward step otherwise.
func (s *ReversePeekable) NextBack() search.Step {
	if s.hasPeekBack {
		s.hasPeekBack = false
		return s.peekedBack
	}
	return s.rev.NextBack()
}

// Peek wraps s in a ReversePeekable when it can search backwards and in a
// Peekable otherwise.
func Peek(s search.Searcher) search.Searcher {
	if r, ok := s.(search.ReverseSearcher); ok {
		return NewReversePeekable(r)
	}
	return NewPeekable(s)
}
