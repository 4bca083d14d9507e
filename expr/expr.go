// Package expr builds pattern expressions: explicit trees of combinators
// that a single evaluator turns into searchers.
//
// An Expr is an immutable value. Calling Searcher builds a fresh searcher
// tree for one haystack, so one Expr may be used for any number of searches,
// also from several goroutines at once.
//
// Example:
//
//	// runs of one to three digits, at most two of them
//	e := expr.Class(class.Digit).Repeat(1, 3).Limit(2)
//	s := e.Searcher("a12345b6")
//	for step := s.Next(); !step.IsDone(); step = s.Next() {
//	    fmt.Println(step)
//	}
package expr

import (
	"math"
	"strconv"

	"github.com/coregx/corepat/class"
	"github.com/coregx/corepat/internal/memmem"
	"github.com/coregx/corepat/literal"
	"github.com/coregx/corepat/logic"
	"github.com/coregx/corepat/search"
)

// Pattern manufactures a searcher bound to one haystack. It must not keep
// state between calls.
type Pattern interface {
	Searcher(haystack string) search.Searcher
}

// PatternFunc adapts a searcher constructor to Pattern.
type PatternFunc func(haystack string) search.Searcher

// Searcher calls f.
func (f PatternFunc) Searcher(haystack string) search.Searcher {
	return f(haystack)
}

// Op is the kind of an Expr node.
type Op uint8

const (
	// OpLiteral matches the text in Literal.
	OpLiteral Op = iota + 1
	// OpChar matches the single rune in Rune.
	OpChar
	// OpClass matches one rune of Class.
	OpClass
	// OpSet matches any literal of Set.
	OpSet
	// OpCustom delegates to Pattern.
	OpCustom
	// OpThen matches Sub[0] immediately followed by Sub[1], and so on.
	OpThen
	// OpOr merges the matches of Sub, resolving conflicts with Tie.
	OpOr
	// OpNot swaps matches and rejects of Sub[0].
	OpNot
	// OpAnd matches where both Sub[0] and Sub[1] match.
	OpAnd
	// OpNor matches where neither Sub[0] nor Sub[1] matches.
	OpNor
	// OpRepeat fuses runs of Min to Max consecutive matches of Sub[0].
	OpRepeat
	// OpLimit lets the first N matches of Sub[0] through.
	OpLimit
	// OpSkip rejects the first N matches of Sub[0].
	OpSkip
	// OpTake stops Sub[0] after N matches.
	OpTake
	// OpSimplify merges the rejects of Sub[0].
	OpSimplify
	// OpFuse makes Sub[0] return Done forever once it is exhausted.
	OpFuse
	// OpPeek buffers one step of Sub[0].
	OpPeek
)

var opNames = [...]string{
	OpLiteral:  "literal",
	OpChar:     "char",
	OpClass:    "class",
	OpSet:      "set",
	OpCustom:   "custom",
	OpThen:     "then",
	OpOr:       "or",
	OpNot:      "not",
	OpAnd:      "and",
	OpNor:      "nor",
	OpRepeat:   "repeat",
	OpLimit:    "limit",
	OpSkip:     "skip",
	OpTake:     "take",
	OpSimplify: "simplify",
	OpFuse:     "fuse",
	OpPeek:     "peek",
}

// String returns the lower case name of the op.
func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Expr is a node of a pattern expression. Only the fields of its Op are
// meaningful. Trees built with the constructors of this package are always
// valid; hand-built trees are checked by Validate.
type Expr struct {
	Op Op

	Literal string         // OpLiteral
	Rune    rune           // OpChar
	Class   class.Class    // OpClass
	Set     *literal.Set   // OpSet
	Pattern Pattern        // OpCustom
	Tie     logic.TieBreak // OpOr, OpAnd, OpNor; nil means logic.PreferLeft
	Min     int            // OpRepeat
	Max     int            // OpRepeat
	N       int            // OpLimit, OpSkip, OpTake
	Sub     []*Expr

	finder *memmem.Finder
}

// Literal returns an expression matching s.
func Literal(s string) *Expr {
	f := memmem.NewFinder(s)
	return &Expr{Op: OpLiteral, Literal: s, finder: &f}
}

// Char returns an expression matching the rune r.
func Char(r rune) *Expr {
	return &Expr{Op: OpChar, Rune: r}
}

// Class returns an expression matching one rune of c.
func Class(c class.Class) *Expr {
	return &Expr{Op: OpClass, Class: c}
}

// Func returns an expression matching one rune accepted by pred.
func Func(pred func(rune) bool) *Expr {
	return Class(class.Func(pred))
}

// Set returns an expression matching any of literals, compiled into one
// Aho-Corasick automaton. Empty literals are rejected.
func Set(literals ...string) (*Expr, error) {
	set, err := literal.NewSet(literals...)
	if err != nil {
		return nil, err
	}
	return &Expr{Op: OpSet, Set: set}, nil
}

// Custom returns an expression delegating to p.
func Custom(p Pattern) *Expr {
	return &Expr{Op: OpCustom, Pattern: p}
}

// Stateful returns an expression evaluating fn on every rune with state
// threaded through one traversal. Each searcher starts from init.
func Stateful[T any](init T, fn class.StatefulFunc[T]) *Expr {
	p := class.Stateful(init, fn)
	return Custom(PatternFunc(func(haystack string) search.Searcher {
		return p.Searcher(haystack)
	}))
}

// Then returns the concatenation of subs. A single sub is returned as is.
func Then(subs ...*Expr) *Expr {
	return fold(OpThen, nil, subs)
}

// Or returns the alternation of subs, preferring the leftmost operand on
// conflicts.
func Or(subs ...*Expr) *Expr {
	return fold(OpOr, logic.PreferLeft, subs)
}

// ROr returns the alternation of subs, preferring the rightmost operand on
// conflicts.
func ROr(subs ...*Expr) *Expr {
	return fold(OpOr, logic.PreferRight, subs)
}

// OrWith returns the alternation of subs, resolving conflicts with tie.
func OrWith(tie logic.TieBreak, subs ...*Expr) *Expr {
	return fold(OpOr, tie, subs)
}

// fold builds a left-deep binary tree: op(op(a, b), c).
func fold(op Op, tie logic.TieBreak, subs []*Expr) *Expr {
	if len(subs) == 0 {
		panic("expr: " + op.String() + " needs at least one operand")
	}
	e := subs[0]
	for _, next := range subs[1:] {
		e = &Expr{Op: op, Tie: tie, Sub: []*Expr{e, next}}
	}
	return e
}

// Not returns the complement of e.
func Not(e *Expr) *Expr {
	return &Expr{Op: OpNot, Sub: []*Expr{e}}
}

// And returns the expression matching where a and b both match.
//
// And is the complement of an Or of complements, so it agrees with its
// operands on covered bytes, not on match boundaries: adjacent matches merge.
// And(P, P) covers the same bytes as P but may report fewer, longer matches.
// Over "aab", Char('a') matches [0, 1) and [1, 2) while
// And(Char('a'), Char('a')) matches [0, 2).
func And(a, b *Expr) *Expr {
	return &Expr{Op: OpAnd, Tie: logic.PreferLeft, Sub: []*Expr{a, b}}
}

// Nor returns the expression matching where neither a nor b matches.
func Nor(a, b *Expr) *Expr {
	return &Expr{Op: OpNor, Tie: logic.PreferLeft, Sub: []*Expr{a, b}}
}

// Repeat returns the expression fusing runs of min to max consecutive
// matches of e.
func Repeat(e *Expr, min, max int) *Expr {
	return &Expr{Op: OpRepeat, Min: min, Max: max, Sub: []*Expr{e}}
}

// Exactly returns Repeat(e, n, n).
func Exactly(e *Expr, n int) *Expr {
	return Repeat(e, n, n)
}

// maxBound is the upper bound of AtLeast.
const maxBound = math.MaxInt

// AtLeast returns Repeat(e, n, unbounded).
func AtLeast(e *Expr, n int) *Expr {
	return Repeat(e, n, maxBound)
}

// Limit returns the expression letting only the first n matches of e
// through.
func Limit(e *Expr, n int) *Expr {
	return &Expr{Op: OpLimit, N: n, Sub: []*Expr{e}}
}

// Skip returns the expression rejecting the first n matches of e.
func Skip(e *Expr, n int) *Expr {
	return &Expr{Op: OpSkip, N: n, Sub: []*Expr{e}}
}

// Take returns the expression stopping e after n matches.
func Take(e *Expr, n int) *Expr {
	return &Expr{Op: OpTake, N: n, Sub: []*Expr{e}}
}

// Simplify returns the expression merging the rejects of e.
func Simplify(e *Expr) *Expr {
	return &Expr{Op: OpSimplify, Sub: []*Expr{e}}
}

// Fuse returns the expression whose searchers keep returning Done.
func Fuse(e *Expr) *Expr {
	return &Expr{Op: OpFuse, Sub: []*Expr{e}}
}

// Peek returns the expression whose searchers support one step lookahead.
func Peek(e *Expr) *Expr {
	return &Expr{Op: OpPeek, Sub: []*Expr{e}}
}

// Then returns Then(e, next).
func (e *Expr) Then(next *Expr) *Expr { return Then(e, next) }

// Or returns Or(e, other).
func (e *Expr) Or(other *Expr) *Expr { return Or(e, other) }

// LOr is Or.
func (e *Expr) LOr(other *Expr) *Expr { return Or(e, other) }

// ROr returns ROr(e, other).
func (e *Expr) ROr(other *Expr) *Expr { return ROr(e, other) }

// And returns And(e, other).
func (e *Expr) And(other *Expr) *Expr { return And(e, other) }

// Nor returns Nor(e, other).
func (e *Expr) Nor(other *Expr) *Expr { return Nor(e, other) }

// Not returns Not(e).
func (e *Expr) Not() *Expr { return Not(e) }

// Repeat returns Repeat(e, min, max).
func (e *Expr) Repeat(min, max int) *Expr { return Repeat(e, min, max) }

// Limit returns Limit(e, n).
func (e *Expr) Limit(n int) *Expr { return Limit(e, n) }

// Skip returns Skip(e, n).
func (e *Expr) Skip(n int) *Expr { return Skip(e, n) }

// Take returns Take(e, n).
func (e *Expr) Take(n int) *Expr { return Take(e, n) }

// Simplify returns Simplify(e).
func (e *Expr) Simplify() *Expr { return Simplify(e) }

// Fuse returns Fuse(e).
func (e *Expr) Fuse() *Expr { return Fuse(e) }
