package adapter

import "github.com/coregx/corepat/search"

// Repeat fuses runs of consecutive child matches. A run grows while the next
// child match starts exactly where the run ends, up to max matches. Runs of
// min to max matches are reported as one Match, shorter runs as one Reject.
// Scanning resumes where the run stopped.
//
// Repeat never produces a match the child did not produce, so min == 0 does
// not create zero-width matches, and max == 0 rejects every run.
// Bounds larger than the haystack are harmless: a run is limited by the
// child's matches, not by max.
type Repeat struct {
	searcher *Peekable
	min, max int
}

// NewRepeat repeats s between min and max times. Negative bounds are
// treated as 0.
func NewRepeat(s search.Searcher, min, max int) *Repeat {
	return &Repeat{searcher: NewPeekable(s), min: max0(min), max: max0(max)}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Haystack returns the searched text.
func (s *Repeat) Haystack() string { return s.searcher.Haystack() }

// Bounds returns the repetition bounds.
func (s *Repeat) Bounds() (min, max int) { return s.min, s.max }

// Next returns the next run or child reject.
func (s *Repeat) Next() search.Step {
	step := s.searcher.Next()
	if !step.IsMatch() {
		return step
	}

	start, end := step.Start, step.End
	count := 1
	for count < s.max {
		next := s.searcher.Peek()
		if !next.IsMatch() || next.Start != end {
			break
		}
		s.searcher.Next()
		end = next.End
		count++
	}

	if count >= s.min && count <= s.max {
		return search.MatchStep(start, end)
	}
	return search.RejectStep(start, end)
}
