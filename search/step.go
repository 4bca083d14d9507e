// Package search defines the step protocol shared by every searcher.
//
// A Searcher walks one immutable haystack from left to right and reports it
// as a sequence of Steps. Each Step is either a Match or a Reject covering a
// half-open byte range, and the sequence ends with Done. For any well-formed
// searcher the steps partition the haystack:
//
//   - the first step starts at 0
//   - every step starts where the previous one ended
//   - the last step ends at len(haystack)
//
// Searchers are single-use, single-goroutine cursors. They are built from a
// pattern for one haystack and discarded after the traversal.
package search

import "fmt"

// Kind classifies a Step.
type Kind uint8

const (
	// Done terminates the step sequence. It is the zero value, so the zero
	// Step is Done.
	Done Kind = iota
	// Match marks a range the pattern accepted.
	Match
	// Reject marks a range the pattern did not accept.
	Reject
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Done:
		return "Done"
	case Match:
		return "Match"
	case Reject:
		return "Reject"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Step is one unit of the haystack partition. Start and End are meaningless
// for Done.
type Step struct {
	Kind  Kind
	Start int
	End   int
}

// MatchStep returns Match(start, end).
func MatchStep(start, end int) Step {
	return Step{Kind: Match, Start: start, End: end}
}

// RejectStep returns Reject(start, end).
func RejectStep(start, end int) Step {
	return Step{Kind: Reject, Start: start, End: end}
}

// DoneStep returns the terminal step.
func DoneStep() Step {
	return Step{}
}

// IsDone reports whether s terminates the sequence.
func (s Step) IsDone() bool { return s.Kind == Done }

// IsMatch reports whether s is a Match.
func (s Step) IsMatch() bool { return s.Kind == Match }

// IsReject reports whether s is a Reject.
func (s Step) IsReject() bool { return s.Kind == Reject }

// Len returns End-Start, or 0 for Done.
func (s Step) Len() int {
	if s.Kind == Done {
		return 0
	}
	return s.End - s.Start
}

// Invert swaps Match and Reject. Done is returned unchanged.
func (s Step) Invert() Step {
	switch s.Kind {
	case Match:
		s.Kind = Reject
	case Reject:
		s.Kind = Match
	}
	return s
}

// String formats the step as Match(0, 1), Reject(1, 3) or Done.
func (s Step) String() string {
	if s.Kind == Done {
		return "Done"
	}
	return fmt.Sprintf("%s(%d, %d)", s.Kind, s.Start, s.End)
}
