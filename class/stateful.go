package class

// StatefulFunc is a predicate that threads auxiliary state across the runes
// of one traversal.
type StatefulFunc[T any] func(r rune, state *T) bool

// StatefulPattern produces searchers whose predicate carries state. Every
// searcher starts from its own copy of the initial state, so one pattern can
// be used for many traversals.
type StatefulPattern[T any] struct {
	init T
	fn   StatefulFunc[T]
}

// Stateful returns a pattern evaluating fn with state initialized to init.
//
// Example: reject everything between parentheses, the closing one included.
//
//	p := class.Stateful(false, func(r rune, inside *bool) bool {
//		if r == '(' && !*inside {
//			*inside = true
//		} else if r == ')' && *inside {
//			*inside = false
//			return false
//		}
//		return !*inside
//	})
func Stateful[T any](init T, fn StatefulFunc[T]) *StatefulPattern[T] {
	return &StatefulPattern[T]{init: init, fn: fn}
}

// Searcher returns a searcher over haystack with fresh state. Backward steps
// share the state with forward steps, in the order the runes are visited.
func (p *StatefulPattern[T]) Searcher(haystack string) *Searcher {
	state := p.init
	fn := p.fn
	return NewFuncSearcher(haystack, func(r rune) bool {
		return fn(r, &state)
	})
}
