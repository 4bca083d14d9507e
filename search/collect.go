package search

// Collect drains s and returns every step before the first Done.
func Collect(s Searcher) []Step {
	var steps []Step
	for {
		step := s.Next()
		if step.IsDone() {
			return steps
		}
		steps = append(steps, step)
	}
}

// CollectBack drains s from the back. Steps are returned in the order they
// were produced, i.e. from the end of the haystack towards 0.
func CollectBack(s ReverseSearcher) []Step {
	var steps []Step
	for {
		step := s.NextBack()
		if step.IsDone() {
			return steps
		}
		steps = append(steps, step)
	}
}

// Matches drains s and returns the bounds of every match. If n >= 0 at most
// n matches are returned and s is left positioned after the last one.
func Matches(s Searcher, n int) [][2]int {
	var out [][2]int
	for n < 0 || len(out) < n {
		start, end, ok := NextMatch(s)
		if !ok {
			break
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

// Count drains s and returns the number of matches and rejects it produced.
func Count(s Searcher) (matches, rejects int) {
	for {
		switch s.Next().Kind {
		case Match:
			matches++
		case Reject:
			rejects++
		default:
			return matches, rejects
		}
	}
}
