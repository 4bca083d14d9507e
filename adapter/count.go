package adapter

import "github.com/coregx/corepat/search"

// Limit lets the first n matches through and rejects every later one.
type Limit struct {
	searcher  search.Searcher
	remaining int
}

// NewLimit limits s to n matches. A negative n is treated as 0.
func NewLimit(s search.Searcher, n int) *Limit {
	return &Limit{searcher: s, remaining: max0(n)}
}

// Haystack returns the searched text.
func (s *Limit) Haystack() string { return s.searcher.Haystack() }

// Remaining returns how many matches are still let through.
func (s *Limit) Remaining() int { return s.remaining }

// Next relabels the child's step.
func (s *Limit) Next() search.Step {
	step := s.searcher.Next()
	if step.IsMatch() {
		if s.remaining == 0 {
			return step.Invert()
		}
		s.remaining--
	}
	return step
}

// NextMatch uses the child's fast path while matches are left and drains the
// child otherwise.
func (s *Limit) NextMatch() (start, end int, ok bool) {
	if s.remaining == 0 {
		return search.StepMatch(s)
	}
	start, end, ok = search.NextMatch(s.searcher)
	if ok {
		s.remaining--
	}
	return start, end, ok
}

// Skip rejects the first n matches and lets every later one through.
type Skip struct {
	searcher  search.Searcher
	remaining int
}

// NewSkip skips the first n matches of s. A negative n is treated as 0.
func NewSkip(s search.Searcher, n int) *Skip {
	return &Skip{searcher: s, remaining: max0(n)}
}

// Haystack returns the searched text.
func (s *Skip) Haystack() string { return s.searcher.Haystack() }

// Next relabels the child's step.
func (s *Skip) Next() search.Step {
	step := s.searcher.Next()
	if step.IsMatch() && s.remaining > 0 {
		s.remaining--
		return step.Invert()
	}
	return step
}

// NextMatch skips the suppressed matches with the child's fast path.
func (s *Skip) NextMatch() (start, end int, ok bool) {
	for ; s.remaining > 0; s.remaining-- {
		if _, _, ok := search.NextMatch(s.searcher); !ok {
			return 0, 0, false
		}
	}
	return search.NextMatch(s.searcher)
}

// Take passes the child's steps through until the n-th match and rejects the
// rest of the haystack in one step without consulting the child again.
type Take struct {
	searcher  *Indexed
	remaining int
	finished  bool
}

// NewTake stops s after n matches. A negative n is treated as 0.
func NewTake(s search.Searcher, n int) *Take {
	return &Take{searcher: NewIndexed(s), remaining: max0(n)}
}

// Haystack returns the searched text.
func (s *Take) Haystack() string { return s.searcher.Haystack() }

// Next returns the child's step, or the trailing reject once n matches were
// taken.
func (s *Take) Next() search.Step {
	if s.finished {
		return search.DoneStep()
	}
	if s.remaining == 0 {
		return s.finish()
	}
	step := s.searcher.Next()
	if step.IsMatch() {
		s.remaining--
	}
	if step.IsDone() {
		s.finished = true
	}
	return step
}

func (s *Take) finish() search.Step {
	s.finished = true
	start, end := s.searcher.Index(), len(s.Haystack())
	if start >= end {
		return search.DoneStep()
	}
	return search.RejectStep(start, end)
}

// NextMatch forwards to the child's fast path until n matches were taken.
func (s *Take) NextMatch() (start, end int, ok bool) {
	if s.remaining == 0 {
		s.finished = true
		return 0, 0, false
	}
	start, end, ok = s.searcher.NextMatch()
	if ok {
		s.remaining--
	}
	s.finished = !ok
	return start, end, ok
}
