package expr

import (
	"strconv"
	"strings"
)

// String renders the tree in prefix form, e.g. then("a", repeat([0-9], 1, 3)).
func (e *Expr) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Expr) write(sb *strings.Builder) {
	if e == nil {
		sb.WriteString("<nil>")
		return
	}
	switch e.Op {
	case OpLiteral:
		sb.WriteString(strconv.Quote(e.Literal))
		return
	case OpChar:
		sb.WriteString(strconv.QuoteRune(e.Rune))
		return
	case OpClass:
		sb.WriteString(e.Class.String())
		return
	case OpSet:
		sb.WriteString("set(")
		if e.Set != nil {
			for i, lit := range e.Set.Literals() {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(strconv.Quote(lit))
			}
		}
		sb.WriteString(")")
		return
	case OpCustom:
		sb.WriteString("custom")
		return
	}

	sb.WriteString(e.Op.String())
	sb.WriteString("(")
	for i, sub := range e.Sub {
		if i > 0 {
			sb.WriteString(", ")
		}
		sub.write(sb)
	}
	switch e.Op {
	case OpRepeat:
		sb.WriteString(", " + strconv.Itoa(e.Min) + ", " + bound(e.Max))
	case OpLimit, OpSkip, OpTake:
		sb.WriteString(", " + strconv.Itoa(e.N))
	}
	sb.WriteString(")")
}

func bound(n int) string {
	if n == maxBound {
		return "inf"
	}
	return strconv.Itoa(n)
}
