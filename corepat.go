// Package corepat provides composable pattern searchers for Go.
//
// A pattern is turned into a searcher over one haystack. The searcher walks
// the haystack front to back and reports a contiguous sequence of steps:
// every byte belongs to exactly one Match or Reject step, and a Done step
// ends the walk. Combinators in packages adapter and logic build new
// searchers out of existing ones, and package expr describes whole
// combinator trees as values.
//
// Basic usage:
//
//	// Compile regular-expression syntax into a combinator tree
//	m, err := corepat.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(m.FindString("hello 123 world")) // "123"
//
//	// Walk every step
//	for _, step := range m.Steps("a1") {
//	    fmt.Println(step) // Reject(0, 1), Match(1, 2)
//	}
//
// Building patterns directly:
//
//	e := expr.Literal("ab").LOr(expr.Class(class.Digit).Repeat(2, 4))
//	m, err := corepat.New(e)
//
// Matching is not backtracking. Repetition matches maximal runs of its
// operand, a concatenation only joins matches that touch, and conflicts
// between alternatives are settled by a tie-break rather than by trying
// every branch.
package corepat

import (
	"strings"

	"github.com/coregx/corepat/expr"
	"github.com/coregx/corepat/search"
	"github.com/coregx/corepat/syntax"
)

// Matcher is a compiled pattern.
//
// A Matcher is immutable and safe to use concurrently from multiple
// goroutines: every call builds its own searcher.
//
// Example:
//
//	m := corepat.MustCompile(`hello`)
//	if m.MatchString("hello world") {
//	    println("matched!")
//	}
type Matcher struct {
	expr    *expr.Expr
	pattern string
}

// Compile compiles a regular-expression pattern into a Matcher.
//
// Syntax is parsed by regexp/syntax with Perl flags. Constructs without a
// combinator equivalent (anchors, word boundaries, lazy repetition) return
// an error wrapping syntax.ErrUnsupported.
//
// Example:
//
//	m, err := corepat.Compile(`[a-z]+@[a-z]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Matcher, error) {
	return CompileWithConfig(pattern, syntax.DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// Example:
//
//	var digits = corepat.MustCompile(`\d+`)
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic("corepat: Compile(`" + pattern + "`): " + err.Error())
	}
	return m
}

// CompileWithConfig compiles a pattern with a custom syntax configuration.
//
// Example:
//
//	config := corepat.DefaultConfig()
//	config.SetThreshold = 8
//	m, err := corepat.CompileWithConfig(`a|b|cd`, config)
func CompileWithConfig(pattern string, config syntax.Config) (*Matcher, error) {
	e, err := syntax.CompileConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Matcher{expr: e, pattern: pattern}, nil
}

// DefaultConfig returns the syntax configuration used by Compile.
func DefaultConfig() syntax.Config {
	return syntax.DefaultConfig()
}

// New wraps an expression tree. The tree is validated once here so later
// searches cannot fail on malformed nodes.
func New(e *expr.Expr) (*Matcher, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{expr: e}, nil
}

// Expr returns the expression tree behind m.
func (m *Matcher) Expr() *expr.Expr {
	return m.expr
}

// String returns the source pattern, or the rendered expression tree when
// m was built with New.
func (m *Matcher) String() string {
	if m.pattern != "" {
		return m.pattern
	}
	return m.expr.String()
}

// Searcher returns a fresh searcher over haystack.
//
// It panics if a custom pattern in the tree returns a searcher over a
// different haystack.
func (m *Matcher) Searcher(haystack string) search.Searcher {
	return m.expr.Searcher(haystack)
}

// Steps returns the full step partition of haystack, without the final Done.
//
// Example:
//
//	m := corepat.MustCompile(`b`)
//	steps := m.Steps("abc")
//	// steps = [Reject(0, 1) Match(1, 2) Reject(2, 3)]
func (m *Matcher) Steps(haystack string) []search.Step {
	return search.Collect(m.Searcher(haystack))
}

// MatchString reports whether s contains any match of the pattern.
func (m *Matcher) MatchString(s string) bool {
	_, _, ok := search.NextMatch(m.Searcher(s))
	return ok
}

// FindString returns the text of the first match in s, or "" if there is
// none. Use FindStringIndex to tell an empty match from no match.
func (m *Matcher) FindString(s string) string {
	loc := m.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindStringIndex returns a two-element slice holding the bounds of the
// first match in s, or nil if there is none.
func (m *Matcher) FindStringIndex(s string) []int {
	start, end, ok := search.NextMatch(m.Searcher(s))
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindAllStringIndex returns the bounds of successive matches in s.
// If n >= 0, it returns at most n matches; otherwise all of them.
// A nil result means no match.
//
// Example:
//
//	m := corepat.MustCompile(`\d+`)
//	m.FindAllStringIndex("a1 b22", -1) // [[1 2] [4 6]]
func (m *Matcher) FindAllStringIndex(s string, n int) [][]int {
	if n == 0 {
		return nil
	}
	var out [][]int
	for _, loc := range search.Matches(m.Searcher(s), n) {
		out = append(out, []int{loc[0], loc[1]})
	}
	return out
}

// FindAllString returns the text of successive matches in s, with the same
// n semantics as FindAllStringIndex.
func (m *Matcher) FindAllString(s string, n int) []string {
	locs := m.FindAllStringIndex(s, n)
	if locs == nil {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// Count returns the number of matches in s.
func (m *Matcher) Count(s string) int {
	matches, _ := search.Count(m.Searcher(s))
	return matches
}

// Split slices s into the substrings between matches.
//
// The count determines the number of substrings to return:
//
//	n > 0: at most n substrings; the last substring will be the unsplit remainder.
//	n == 0: the result is nil (zero substrings)
//	n < 0: all substrings
//
// Example:
//
//	m := corepat.MustCompile(`,`)
//	m.Split("a,b,c", -1) // ["a" "b" "c"]
//	m.Split("a,b,c", 2)  // ["a" "b,c"]
func (m *Matcher) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []string{s}
	}

	s1 := m.Searcher(s)
	result := make([]string, 0, 4)
	last := 0
	for {
		start, end, ok := search.NextMatch(s1)
		if !ok {
			break
		}
		result = append(result, s[last:start])
		last = end
		if n > 0 && len(result) == n-1 {
			break
		}
	}
	return append(result, s[last:])
}

// ReplaceAllString returns a copy of src with every match replaced by repl.
// repl is inserted literally; there is no template expansion.
func (m *Matcher) ReplaceAllString(src, repl string) string {
	return m.ReplaceAllStringFunc(src, func(string) string { return repl })
}

// ReplaceAllStringFunc returns a copy of src with every match replaced by
// the return value of repl applied to the matched text.
func (m *Matcher) ReplaceAllStringFunc(src string, repl func(string) string) string {
	s := m.Searcher(src)
	var sb strings.Builder
	last, matched := 0, false
	for {
		start, end, ok := search.NextMatch(s)
		if !ok {
			break
		}
		if !matched {
			sb.Grow(len(src))
			matched = true
		}
		sb.WriteString(src[last:start])
		sb.WriteString(repl(src[start:end]))
		last = end
	}
	if !matched {
		return src
	}
	sb.WriteString(src[last:])
	return sb.String()
}

// TrimLeft returns s without the run of matches at its start.
//
// Example:
//
//	corepat.MustCompile(`ab`).TrimLeft("ababcab") // "cab"
func (m *Matcher) TrimLeft(s string) string {
	sr := m.Searcher(s)
	cut := 0
	for step := sr.Next(); step.IsMatch(); step = sr.Next() {
		cut = step.End
	}
	return s[cut:]
}

// TrimRight returns s without the run of matches at its end.
//
// When the searcher walks backwards the run is taken from the backward
// partition, otherwise from the tail of the forward one.
//
// Example:
//
//	corepat.MustCompile(`ab`).TrimRight("abcabab") // "abc"
func (m *Matcher) TrimRight(s string) string {
	sr := m.Searcher(s)
	if rs, ok := sr.(search.ReverseSearcher); ok {
		cut := len(s)
		for step := rs.NextBack(); step.IsMatch(); step = rs.NextBack() {
			cut = step.Start
		}
		return s[:cut]
	}

	cut := len(s)
	for step := sr.Next(); !step.IsDone(); step = sr.Next() {
		switch {
		case !step.IsMatch():
			cut = len(s)
		case cut == len(s):
			cut = step.Start
		}
	}
	return s[:cut]
}
