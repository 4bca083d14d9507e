// Package class implements character predicates and the per-rune searcher
// that evaluates them.
//
// A Class is a small tagged value rather than an opaque closure, so compound
// classes built by the syntax compiler stay inspectable:
//
//	word := class.ASCII("_").Or(class.Ranges('a', 'z', 'A', 'Z', '0', '9'))
//	word.Matches('q') // true
//
// Stateful predicates whose answer depends on the runes seen so far are
// provided by Stateful; each searcher gets its own copy of the state.
package class

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Kind is the variant of a Class.
type Kind uint8

const (
	// KindNone matches nothing. It is the zero value.
	KindNone Kind = iota
	// KindRune matches one rune.
	KindRune
	// KindASCII matches a set of ASCII bytes held in a bit table.
	KindASCII
	// KindRanges matches sorted inclusive rune ranges.
	KindRanges
	// KindFunc delegates to a user predicate.
	KindFunc
	// KindAnyOf matches when any member matches, tried in order.
	KindAnyOf
)

// Class is a character predicate. The zero Class matches nothing.
type Class struct {
	kind    Kind
	negated bool

	r      rune
	ascii  [2]uint64
	ranges []rune // lo, hi pairs
	fn     func(rune) bool
	any    []Class
}

// Rune returns the class matching exactly r.
func Rune(r rune) Class {
	return Class{kind: KindRune, r: r}
}

// ASCII returns the class of the ASCII bytes in chars. Non-ASCII runes in
// chars panic, since they cannot be represented in the table.
func ASCII(chars string) Class {
	c := Class{kind: KindASCII}
	for _, r := range chars {
		if r >= 0x80 {
			panic(fmt.Sprintf("class: %q is not ASCII", r))
		}
		c.ascii[r/64] |= 1 << (r % 64)
	}
	return c
}

// ASCIIRange returns the class of ASCII bytes lo through hi.
func ASCIIRange(lo, hi byte) Class {
	c := Class{kind: KindASCII}
	for b := int(lo); b <= int(hi) && b < 0x80; b++ {
		c.ascii[b/64] |= 1 << (b % 64)
	}
	return c
}

// Ranges returns the class of the inclusive ranges given as lo, hi pairs, in
// the layout regexp/syntax uses for OpCharClass. A trailing odd bound is
// treated as a single rune.
func Ranges(pairs ...rune) Class {
	if len(pairs)%2 == 1 {
		pairs = append(pairs, pairs[len(pairs)-1])
	}
	type pair struct{ lo, hi rune }
	ps := make([]pair, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		lo, hi := pairs[i], pairs[i+1]
		if lo > hi {
			lo, hi = hi, lo
		}
		ps = append(ps, pair{lo, hi})
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].lo < ps[j].lo })

	c := Class{kind: KindRanges}
	for _, p := range ps {
		n := len(c.ranges)
		if n > 0 && p.lo <= c.ranges[n-1]+1 {
			c.ranges[n-1] = max(c.ranges[n-1], p.hi)
			continue
		}
		c.ranges = append(c.ranges, p.lo, p.hi)
	}
	return c
}

// Func wraps a stateless predicate.
func Func(f func(rune) bool) Class {
	if f == nil {
		return Class{}
	}
	return Class{kind: KindFunc, fn: f}
}

// AnyOf returns the class matching when any of classes matches. Nested
// compound classes are flattened.
func AnyOf(classes ...Class) Class {
	c := Class{kind: KindAnyOf}
	for _, m := range classes {
		c = c.Or(m)
	}
	return c
}

// Or returns a class matching c or other. Adjacent ASCII tables merge into
// one table; everything else accumulates as members evaluated in order.
func (c Class) Or(other Class) Class {
	switch {
	case other.kind == KindNone && !other.negated:
		return c
	case c.kind == KindNone && !c.negated:
		return other
	case c.kind == KindASCII && other.kind == KindASCII && !c.negated && !other.negated:
		c.ascii[0] |= other.ascii[0]
		c.ascii[1] |= other.ascii[1]
		return c
	}

	out := Class{kind: KindAnyOf}
	for _, m := range [...]Class{c, other} {
		if m.kind == KindAnyOf && !m.negated {
			out.any = append(out.any, m.any...)
		} else {
			out.any = append(out.any, m)
		}
	}
	return out
}

// Negate returns the complement of c.
func (c Class) Negate() Class {
	c.negated = !c.negated
	return c
}

// Kind returns the variant of c.
func (c Class) Kind() Kind { return c.kind }

// IsNegated reports whether c is a complement.
func (c Class) IsNegated() bool { return c.negated }

// Matches reports whether r belongs to the class.
func (c Class) Matches(r rune) bool {
	return c.matches(r) != c.negated
}

func (c Class) matches(r rune) bool {
	switch c.kind {
	case KindRune:
		return r == c.r
	case KindASCII:
		return r >= 0 && r < 0x80 && c.ascii[r/64]&(1<<(r%64)) != 0
	case KindRanges:
		// binary search over pairs
		i := sort.Search(len(c.ranges)/2, func(i int) bool { return c.ranges[2*i+1] >= r })
		return i < len(c.ranges)/2 && c.ranges[2*i] <= r
	case KindFunc:
		return c.fn(r)
	case KindAnyOf:
		for _, m := range c.any {
			if m.Matches(r) {
				return true
			}
		}
	}
	return false
}

// asciiByte reports whether the ASCII byte b is in an ASCII table class.
func (c *Class) asciiByte(b byte) bool {
	return c.ascii[b/64]&(1<<(b%64)) != 0
}

// String describes the class for diagnostics.
func (c Class) String() string {
	var sb strings.Builder
	if c.negated {
		sb.WriteString("!")
	}
	switch c.kind {
	case KindNone:
		sb.WriteString("none")
	case KindRune:
		fmt.Fprintf(&sb, "%q", c.r)
	case KindASCII:
		sb.WriteString("[")
		for b := 0; b < 0x80; b++ {
			if c.asciiByte(byte(b)) {
				q := strconv.QuoteRuneToASCII(rune(b))
				sb.WriteString(q[1 : len(q)-1])
			}
		}
		sb.WriteString("]")
	case KindRanges:
		sb.WriteString("[")
		for i := 0; i < len(c.ranges); i += 2 {
			if c.ranges[i] == c.ranges[i+1] {
				fmt.Fprintf(&sb, "%c", c.ranges[i])
			} else {
				fmt.Fprintf(&sb, "%c-%c", c.ranges[i], c.ranges[i+1])
			}
		}
		sb.WriteString("]")
	case KindFunc:
		sb.WriteString("func")
	case KindAnyOf:
		sb.WriteString("any(")
		for i, m := range c.any {
			if i > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(m.String())
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// Predefined classes used by the syntax compiler for Perl classes.
var (
	// Digit is \d: ASCII 0-9.
	Digit = ASCIIRange('0', '9')
	// Word is \w: ASCII letters, digits and underscore.
	Word = ASCIIRange('a', 'z').Or(ASCIIRange('A', 'Z')).Or(Digit).Or(ASCII("_"))
	// Space is \s: ASCII whitespace as Perl defines it.
	Space = ASCII("\t\n\f\r ")
	// Any matches every rune.
	Any = Class{}.Negate()
	// Letter matches Unicode letters.
	Letter = Func(unicode.IsLetter)
)
