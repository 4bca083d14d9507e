package syntax

import (
	resyntax "regexp/syntax"
	"strings"
)

// literals expands re into the finite list of strings it matches, in
// alternation order. It fails when re contains anything but plain literals,
// small classes, concatenation and alternation, when any expansion is
// empty, or when the list would exceed MaxSetLiterals.
func (c *compiler) literals(re *resyntax.Regexp) ([]string, bool) {
	lits, ok := c.expand(re)
	if !ok {
		return nil, false
	}
	seen := make(map[string]struct{}, len(lits))
	out := lits[:0]
	for _, lit := range lits {
		if lit == "" {
			return nil, false
		}
		if _, dup := seen[lit]; dup {
			continue
		}
		seen[lit] = struct{}{}
		out = append(out, lit)
	}
	return out, true
}

func (c *compiler) expand(re *resyntax.Regexp) ([]string, bool) {
	limit := c.config.MaxSetLiterals
	switch re.Op {
	case resyntax.OpEmptyMatch:
		return []string{""}, true
	case resyntax.OpLiteral:
		if re.Flags&resyntax.FoldCase != 0 {
			return nil, false
		}
		return []string{string(re.Rune)}, true
	case resyntax.OpCharClass:
		var out []string
		for i := 0; i+1 < len(re.Rune); i += 2 {
			for r := re.Rune[i]; r <= re.Rune[i+1]; r++ {
				if len(out) == c.config.MaxClassExpansion {
					return nil, false
				}
				out = append(out, string(r))
			}
		}
		return out, len(out) > 0
	case resyntax.OpCapture:
		return c.expand(re.Sub[0])
	case resyntax.OpConcat:
		out := []string{""}
		for _, sub := range re.Sub {
			tails, ok := c.expand(sub)
			if !ok || len(out)*len(tails) > limit {
				return nil, false
			}
			next := make([]string, 0, len(out)*len(tails))
			for _, head := range out {
				for _, tail := range tails {
					next = append(next, head+tail)
				}
			}
			out = next
		}
		return out, true
	case resyntax.OpAlternate:
		var out []string
		for _, sub := range re.Sub {
			alts, ok := c.expand(sub)
			if !ok || len(out)+len(alts) > limit {
				return nil, false
			}
			out = append(out, alts...)
		}
		return out, true
	}
	return nil, false
}

// disjoint reports whether occurrences of lits can never overlap in any
// haystack: no literal contains another, and no literal ends with a prefix
// of another or of itself.
func disjoint(lits []string) bool {
	for i, a := range lits {
		for j, b := range lits {
			if i != j && strings.Contains(b, a) {
				return false
			}
			for k := 1; k < len(a) && k < len(b); k++ {
				if a[len(a)-k:] == b[:k] {
					return false
				}
			}
		}
	}
	return true
}
