package search

// Searcher is a stateful cursor over one haystack.
//
// Next returns the next step of the partition. A searcher is not required to
// keep returning Done once it has returned it; wrap it in adapter.Fused when
// idempotent termination is needed.
type Searcher interface {
	Haystack() string
	Next() Step
}

// ReverseSearcher can also produce the partition from the end of the
// haystack. The first NextBack step ends at len(haystack), each following one
// ends where the previous one started, and the last starts at 0.
//
// For searchers that support both directions at once, forward and backward
// steps consume the same haystack from opposite ends and never overlap.
type ReverseSearcher interface {
	Searcher
	NextBack() Step
}

// MatchSearcher is implemented by searchers that can skip to their next match
// faster than stepping through rejects one by one.
type MatchSearcher interface {
	NextMatch() (start, end int, ok bool)
}

// RejectSearcher is the reject counterpart of MatchSearcher.
type RejectSearcher interface {
	NextReject() (start, end int, ok bool)
}

// BackMatchSearcher is the backward counterpart of MatchSearcher.
type BackMatchSearcher interface {
	NextMatchBack() (start, end int, ok bool)
}

// BackRejectSearcher is the backward counterpart of RejectSearcher.
type BackRejectSearcher interface {
	NextRejectBack() (start, end int, ok bool)
}

// NextMatch advances s to its next Match and returns its bounds. ok is false
// once s has no more matches.
func NextMatch(s Searcher) (start, end int, ok bool) {
	if m, fast := s.(MatchSearcher); fast {
		return m.NextMatch()
	}
	return StepMatch(s)
}

// StepMatch finds the next match by calling Next only. Searchers implementing
// MatchSearcher in terms of their own steps use it to avoid recursion.
func StepMatch(s Searcher) (start, end int, ok bool) {
	for {
		step := s.Next()
		switch step.Kind {
		case Match:
			return step.Start, step.End, true
		case Done:
			return 0, 0, false
		}
	}
}

// NextReject advances s to its next Reject and returns its bounds.
func NextReject(s Searcher) (start, end int, ok bool) {
	if r, fast := s.(RejectSearcher); fast {
		return r.NextReject()
	}
	return StepReject(s)
}

// StepReject finds the next reject by calling Next only.
func StepReject(s Searcher) (start, end int, ok bool) {
	for {
		step := s.Next()
		switch step.Kind {
		case Reject:
			return step.Start, step.End, true
		case Done:
			return 0, 0, false
		}
	}
}

// NextMatchBack advances s backwards to its next Match.
func NextMatchBack(s ReverseSearcher) (start, end int, ok bool) {
	if m, fast := s.(BackMatchSearcher); fast {
		return m.NextMatchBack()
	}
	return StepMatchBack(s)
}

// StepMatchBack finds the next match from the back by calling NextBack only.
func StepMatchBack(s ReverseSearcher) (start, end int, ok bool) {
	for {
		step := s.NextBack()
		switch step.Kind {
		case Match:
			return step.Start, step.End, true
		case Done:
			return 0, 0, false
		}
	}
}

// NextRejectBack advances s backwards to its next Reject.
func NextRejectBack(s ReverseSearcher) (start, end int, ok bool) {
	if r, fast := s.(BackRejectSearcher); fast {
		return r.NextRejectBack()
	}
	return StepRejectBack(s)
}

// StepRejectBack finds the next reject from the back by calling NextBack only.
func StepRejectBack(s ReverseSearcher) (start, end int, ok bool) {
	for {
		step := s.NextBack()
		switch step.Kind {
		case Reject:
			return step.Start, step.End, true
		case Done:
			return 0, 0, false
		}
	}
}
