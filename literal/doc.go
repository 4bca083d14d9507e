// Package literal provides the leaf searchers for fixed text.
//
// Three searchers are available:
//   - Str finds one literal string. Rejects between two occurrences are
//     reported as a single step.
//   - Char finds one rune and steps through the haystack rune by rune.
//   - Set finds any of many literal strings with an Aho-Corasick automaton.
//
// Str and Char also search from the back (search.ReverseSearcher). Forward and
// backward steps share one window of the haystack: each direction shrinks it
// from its own side.
package literal
