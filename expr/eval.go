package expr

import (
	"errors"
	"fmt"

	"github.com/coregx/corepat/adapter"
	"github.com/coregx/corepat/class"
	"github.com/coregx/corepat/literal"
	"github.com/coregx/corepat/logic"
	"github.com/coregx/corepat/search"
)

// ErrInvalid is returned for malformed expression trees.
var ErrInvalid = errors.New("invalid expression")

// Error describes a malformed node.
type Error struct {
	Op  Op
	Msg string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("expr: %s: %s", e.Op, e.Msg)
}

// Unwrap returns ErrInvalid
func (e *Error) Unwrap() error {
	return ErrInvalid
}

// arity returns the number of operands op takes.
func arity(op Op) (int, bool) {
	switch op {
	case OpLiteral, OpChar, OpClass, OpSet, OpCustom:
		return 0, true
	case OpNot, OpRepeat, OpLimit, OpSkip, OpTake, OpSimplify, OpFuse, OpPeek:
		return 1, true
	case OpThen, OpOr, OpAnd, OpNor:
		return 2, true
	}
	return 0, false
}

// Validate checks that every node of the tree has the operands and fields
// its op requires.
func (e *Expr) Validate() error {
	if e == nil {
		return &Error{Msg: "nil expression"}
	}
	n, ok := arity(e.Op)
	if !ok {
		return &Error{Op: e.Op, Msg: "unknown op"}
	}
	if len(e.Sub) != n {
		return &Error{Op: e.Op, Msg: fmt.Sprintf("want %d operands, have %d", n, len(e.Sub))}
	}
	switch {
	case e.Op == OpSet && e.Set == nil:
		return &Error{Op: e.Op, Msg: "nil literal set"}
	case e.Op == OpCustom && e.Pattern == nil:
		return &Error{Op: e.Op, Msg: "nil pattern"}
	}
	for _, sub := range e.Sub {
		if err := sub.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Build returns the searcher tree of e over haystack. It fails for invalid
// trees and for custom patterns that bind a different haystack.
func (e *Expr) Build(haystack string) (search.Searcher, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e.build(haystack)
}

// Searcher implements Pattern. It panics where Build returns an error.
func (e *Expr) Searcher(haystack string) search.Searcher {
	s, err := e.Build(haystack)
	if err != nil {
		panic(err)
	}
	return s
}

func (e *Expr) build(haystack string) (search.Searcher, error) {
	switch e.Op {
	case OpLiteral:
		if e.finder != nil {
			return literal.NewStrFinder(haystack, *e.finder), nil
		}
		return literal.NewStr(haystack, e.Literal), nil
	case OpChar:
		return literal.NewChar(haystack, e.Rune), nil
	case OpClass:
		return class.NewSearcher(haystack, e.Class), nil
	case OpSet:
		return e.Set.Searcher(haystack), nil
	case OpCustom:
		s := e.Pattern.Searcher(haystack)
		if !search.SameHaystack(s.Haystack(), haystack) {
			return nil, &search.HaystackError{Op: "custom", Left: len(haystack), Right: len(s.Haystack()), Err: search.ErrHaystackMismatch}
		}
		return s, nil
	}

	subs := make([]search.Searcher, len(e.Sub))
	for i, sub := range e.Sub {
		s, err := sub.build(haystack)
		if err != nil {
			return nil, err
		}
		subs[i] = s
	}

	var (
		s   search.Searcher
		err error
	)
	switch e.Op {
	case OpThen:
		s, err = adapter.NewThen(subs[0], subs[1])
	case OpOr:
		s, err = logic.NewOr(subs[0], subs[1], e.Tie)
	case OpAnd:
		s, err = logic.NewAnd(subs[0], subs[1], e.Tie)
	case OpNor:
		s, err = logic.NewNor(subs[0], subs[1], e.Tie)
	}
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	switch e.Op {
	case OpNot:
		return logic.Complement(subs[0]), nil
	case OpRepeat:
		if e.Min == 1 && e.Max == 1 {
			return subs[0], nil
		}
		return adapter.NewRepeat(subs[0], e.Min, e.Max), nil
	case OpLimit:
		return adapter.NewLimit(subs[0], e.N), nil
	case OpSkip:
		return adapter.NewSkip(subs[0], e.N), nil
	case OpTake:
		return adapter.NewTake(subs[0], e.N), nil
	case OpSimplify:
		return adapter.NewSimplify(subs[0]), nil
	case OpFuse:
		return adapter.Fuse(subs[0]), nil
	case OpPeek:
		return adapter.Peek(subs[0]), nil
	}
	return nil, &Error{Op: e.Op, Msg: "unknown op"}
}
