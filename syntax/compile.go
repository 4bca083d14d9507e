// Package syntax compiles regular-expression syntax into pattern
// expressions.
//
// Patterns are parsed with regexp/syntax and lowered node by node onto the
// combinators of package expr. Only constructs with a combinator
// equivalent are accepted: literals, character classes, any-char,
// concatenation, alternation, greedy repetition and the empty match.
// Capture groups are transparent. Anchors, word boundaries and lazy
// repetition report ErrUnsupported.
//
// The lowering simplifies as it goes. Adjacent literals merge into one
// literal, alternations of single characters merge into one class, and
// alternations that expand to plain literals become an alternation of those
// literals. When there are enough of them and no two occurrences can
// overlap, the alternation becomes one Aho-Corasick set, which reports the
// same steps.
//
// Repetition follows combinator semantics rather than backtracking
// semantics: a* matches maximal non-empty runs of a, and a concatenation
// only joins matches that actually touch. In particular ab*c does not
// match "ac".
package syntax

import (
	resyntax "regexp/syntax"
	"unicode"

	"github.com/coregx/corepat/class"
	"github.com/coregx/corepat/expr"
)

// Compile parses pattern with the default configuration.
func Compile(pattern string) (*expr.Expr, error) {
	return CompileConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *expr.Expr {
	e, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return e
}

// CompileConfig parses pattern with config.
func CompileConfig(pattern string, config Config) (*expr.Expr, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	re, err := resyntax.Parse(pattern, config.Flags)
	if err != nil {
		return nil, &Error{Pattern: pattern, Err: err}
	}
	return lower(pattern, re, config)
}

// FromRegexp lowers an already parsed expression with the default
// configuration.
func FromRegexp(re *resyntax.Regexp) (*expr.Expr, error) {
	return FromRegexpConfig(re, DefaultConfig())
}

// FromRegexpConfig lowers an already parsed expression with config.
func FromRegexpConfig(re *resyntax.Regexp, config Config) (*expr.Expr, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return lower(re.String(), re, config)
}

func lower(pattern string, re *resyntax.Regexp, config Config) (*expr.Expr, error) {
	c := &compiler{config: config}
	e, err := c.compile(re)
	if err != nil {
		if se, ok := err.(*Error); ok {
			se.Pattern = pattern
		}
		return nil, err
	}
	return e, nil
}

type compiler struct {
	config Config
}

func unsupported(re *resyntax.Regexp) error {
	return &Error{Construct: re.String(), Err: ErrUnsupported}
}

func (c *compiler) compile(re *resyntax.Regexp) (*expr.Expr, error) {
	switch re.Op {
	case resyntax.OpNoMatch:
		return expr.Class(class.Class{}), nil
	case resyntax.OpEmptyMatch:
		return expr.Literal(""), nil
	case resyntax.OpLiteral:
		return literal(re.Rune, re.Flags&resyntax.FoldCase != 0), nil
	case resyntax.OpCharClass:
		return charClass(re.Rune), nil
	case resyntax.OpAnyCharNotNL:
		return expr.Class(class.Rune('\n').Negate()), nil
	case resyntax.OpAnyChar:
		return expr.Class(class.Any), nil
	case resyntax.OpCapture:
		return c.compile(re.Sub[0])
	case resyntax.OpStar, resyntax.OpPlus, resyntax.OpQuest, resyntax.OpRepeat:
		return c.repeat(re)
	case resyntax.OpConcat:
		return c.concat(re.Sub)
	case resyntax.OpAlternate:
		return c.alternate(re)
	default:
		// anchors and word boundaries
		return nil, unsupported(re)
	}
}

func (c *compiler) repeat(re *resyntax.Regexp) (*expr.Expr, error) {
	if re.Flags&resyntax.NonGreedy != 0 {
		return nil, unsupported(re)
	}
	sub, err := c.compile(re.Sub[0])
	if err != nil {
		return nil, err
	}
	switch re.Op {
	case resyntax.OpStar:
		return expr.AtLeast(sub, 0), nil
	case resyntax.OpPlus:
		return expr.AtLeast(sub, 1), nil
	case resyntax.OpQuest:
		return expr.Repeat(sub, 0, 1), nil
	}
	if re.Max < 0 {
		return expr.AtLeast(sub, re.Min), nil
	}
	return expr.Repeat(sub, re.Min, re.Max), nil
}

// concat joins subs left to right, merging runs of plain literals.
func (c *compiler) concat(subs []*resyntax.Regexp) (*expr.Expr, error) {
	var (
		parts []*expr.Expr
		text  []rune
		open  bool
	)
	flush := func() {
		if open {
			parts = append(parts, literal(text, false))
			text, open = nil, false
		}
	}
	for _, sub := range subs {
		e, err := c.compile(sub)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case expr.OpLiteral:
			text = append(text, []rune(e.Literal)...)
			open = true
		case expr.OpChar:
			text = append(text, e.Rune)
			open = true
		default:
			flush()
			parts = append(parts, e)
		}
	}
	flush()
	if len(parts) == 0 {
		return expr.Literal(""), nil
	}
	return expr.Then(parts...), nil
}

func (c *compiler) alternate(re *resyntax.Regexp) (*expr.Expr, error) {
	subs := make([]*expr.Expr, 0, len(re.Sub))
	single := true
	for _, sub := range re.Sub {
		e, err := c.compile(sub)
		if err != nil {
			return nil, err
		}
		if e.Op != expr.OpChar && e.Op != expr.OpClass {
			single = false
		}
		subs = append(subs, e)
	}
	if single {
		merged := class.Class{}
		for _, e := range subs {
			if e.Op == expr.OpChar {
				merged = merged.Or(class.Rune(e.Rune))
			} else {
				merged = merged.Or(e.Class)
			}
		}
		return expr.Class(merged), nil
	}
	lits, ok := c.literals(re)
	if !ok {
		return expr.Or(subs...), nil
	}
	if c.config.SetThreshold > 0 && len(lits) >= c.config.SetThreshold && disjoint(lits) {
		return expr.Set(lits...)
	}
	alts := make([]*expr.Expr, len(lits))
	for i, lit := range lits {
		alts[i] = literal([]rune(lit), false)
	}
	return expr.Or(alts...), nil
}

// literal lowers a rune sequence. Case folded runes become classes of
// their fold orbit.
func literal(runes []rune, fold bool) *expr.Expr {
	if !fold {
		if len(runes) == 1 {
			return expr.Char(runes[0])
		}
		return expr.Literal(string(runes))
	}
	parts := make([]*expr.Expr, 0, len(runes))
	for _, r := range runes {
		orbit := []rune{r}
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			orbit = append(orbit, f)
		}
		if len(orbit) == 1 {
			parts = append(parts, expr.Char(r))
			continue
		}
		pairs := make([]rune, 0, 2*len(orbit))
		for _, f := range orbit {
			pairs = append(pairs, f, f)
		}
		parts = append(parts, expr.Class(class.Ranges(pairs...)))
	}
	if len(parts) == 0 {
		return expr.Literal("")
	}
	return expr.Then(parts...)
}

// charClass lowers an OpCharClass range list. Pure ASCII classes use the
// table representation.
func charClass(pairs []rune) *expr.Expr {
	if len(pairs) == 2 && pairs[0] == pairs[1] {
		return expr.Char(pairs[0])
	}
	ascii := len(pairs) > 0
	for i := 1; i < len(pairs); i += 2 {
		if pairs[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if !ascii {
		return expr.Class(class.Ranges(pairs...))
	}
	c := class.ASCIIRange(byte(pairs[0]), byte(pairs[1]))
	for i := 2; i+1 < len(pairs); i += 2 {
		c = c.Or(class.ASCIIRange(byte(pairs[i]), byte(pairs[i+1])))
	}
	return expr.Class(c)
}
