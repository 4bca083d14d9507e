package cmd

import (
	resyntax "regexp/syntax"

	"github.com/spf13/cobra"

	"github.com/coregx/corepat"
	"github.com/coregx/corepat/internal/config"
)

// patternOptions holds the flags that shape the compiled pattern.
type patternOptions struct {
	ignoreCase bool
	not        bool
	simplify   bool
	limit      int
	skip       int
	take       int
}

func (p *patternOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&p.ignoreCase, "ignore-case", "i", false, "Match case-insensitively")
	cmd.Flags().BoolVar(&p.not, "not", false, "Match everything the pattern rejects")
	cmd.Flags().BoolVar(&p.simplify, "simplify", false, "Merge consecutive rejects into one step")
	cmd.Flags().IntVar(&p.limit, "limit", -1, "Report only the first N matches, the rest become rejects")
	cmd.Flags().IntVar(&p.skip, "skip", 0, "Turn the first N matches into rejects")
	cmd.Flags().IntVar(&p.take, "take", -1, "Stop after N matches and reject the remainder")
}

// compile lowers pattern and wraps it in the selected combinators. The
// order is fixed: not, skip, limit, take, simplify.
func (p *patternOptions) compile(pattern string, cfg *config.Config) (*corepat.Matcher, error) {
	sc := cfg.SyntaxConfig()
	if p.ignoreCase {
		sc.Flags |= resyntax.FoldCase
	}
	m, err := corepat.CompileWithConfig(pattern, sc)
	if err != nil {
		return nil, err
	}

	e := m.Expr()
	if p.not {
		e = e.Not()
	}
	if p.skip > 0 {
		e = e.Skip(p.skip)
	}
	if p.limit >= 0 {
		e = e.Limit(p.limit)
	}
	if p.take >= 0 {
		e = e.Take(p.take)
	}
	if p.simplify {
		e = e.Simplify()
	}
	if e == m.Expr() {
		return m, nil
	}
	return corepat.New(e)
}
