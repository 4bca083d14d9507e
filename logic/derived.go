package logic

import "github.com/coregx/corepat/search"

// NewNor returns Not(Or(a, b)): the ranges where neither operand matches.
func NewNor(a, b search.Searcher, tie TieBreak) (*Not, error) {
	or, err := NewOr(a, b, tie)
	if err != nil {
		return nil, err
	}
	return NewNot(or), nil
}

// NewAnd returns Nor(Not(a), Not(b)): the ranges where both operands match.
// Adjacent matches of the operands come out as one match, since the result
// is the complement of an Or.
func NewAnd(a, b search.Searcher, tie TieBreak) (*Not, error) {
	return NewNor(NewNot(a), NewNot(b), tie)
}
