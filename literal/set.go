package literal

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/corepat/search"
)

// ErrEmptyLiteral is returned when a literal set contains the empty string.
// Zero-length alternatives are expressed with an empty Str instead.
var ErrEmptyLiteral = errors.New("literal set contains an empty literal")

// ErrNoLiterals is returned for a set without any literal.
var ErrNoLiterals = errors.New("literal set is empty")

// Set is a compiled group of literals. It is immutable and may be shared by
// any number of searchers.
type Set struct {
	literals  []string
	automaton *ahocorasick.Automaton
}

// NewSet compiles literals into one Aho-Corasick automaton.
func NewSet(literals ...string) (*Set, error) {
	if len(literals) == 0 {
		return nil, ErrNoLiterals
	}
	builder := ahocorasick.NewBuilder()
	for i, lit := range literals {
		if lit == "" {
			return nil, fmt.Errorf("literal %d: %w", i, ErrEmptyLiteral)
		}
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build literal set: %w", err)
	}
	return &Set{literals: append([]string(nil), literals...), automaton: auto}, nil
}

// Literals returns a copy of the literals in the set.
func (s *Set) Literals() []string {
	return append([]string(nil), s.literals...)
}

// Searcher returns a searcher for the set over haystack.
func (s *Set) Searcher(haystack string) *SetSearcher {
	return &SetSearcher{
		haystack: haystack,
		bytes:    []byte(haystack),
		set:      s,
	}
}

// SetSearcher reports non-overlapping occurrences of any literal of a Set,
// scanning left to right. Rejects between occurrences are single steps.
type SetSearcher struct {
	haystack string
	bytes    []byte
	set      *Set
	pos      int

	pendingStart, pendingEnd int
	hasPending               bool
	done                     bool
}

// Haystack returns the searched text.
func (s *SetSearcher) Haystack() string { return s.haystack }

func (s *SetSearcher) find() (start, end int, ok bool) {
	if s.hasPending {
		s.hasPending = false
		return s.pendingStart, s.pendingEnd, true
	}
	if s.done || s.pos >= len(s.bytes) {
		return 0, 0, false
	}
	m := s.set.automaton.Find(s.bytes, s.pos)
	if m == nil {
		s.done = true
		return 0, 0, false
	}
	return m.Start, m.End, true
}

// Next returns the next step.
func (s *SetSearcher) Next() search.Step {
	if s.pos >= len(s.haystack) {
		return search.DoneStep()
	}
	start, end, ok := s.find()
	switch {
	case !ok:
		from := s.pos
		s.pos = len(s.haystack)
		return search.RejectStep(from, s.pos)
	case start > s.pos:
		from := s.pos
		s.pendingStart, s.pendingEnd, s.hasPending = start, end, true
		s.pos = start
		return search.RejectStep(from, start)
	default:
		s.pos = end
		return search.MatchStep(start, end)
	}
}

// NextMatch skips directly to the next occurrence.
func (s *SetSearcher) NextMatch() (start, end int, ok bool) {
	start, end, ok = s.find()
	if !ok {
		s.pos = len(s.haystack)
		return 0, 0, false
	}
	s.pos = end
	return start, end, true
}
