package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

func newStepsCmd(root *rootOptions) *cobra.Command {
	var opts patternOptions

	cmd := &cobra.Command{
		Use:   "steps [flags] PATTERN TEXT",
		Short: "Print the step partition of TEXT",
		Long: `Print every step PATTERN produces over TEXT, one per line, followed by
the text it covers.

Example:
  corepat steps 'a+' baa
  Reject(0, 1) "b"
  Match(1, 3) "aa"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.compile(args[0], root.cfg)
			if err != nil {
				return err
			}
			root.logger.Debug("pattern compiled", slog.String("pattern", args[0]), slog.String("expr", m.Expr().String()))

			text := args[1]
			out := cmd.OutOrStdout()
			for _, step := range m.Steps(text) {
				if _, err := fmt.Fprintf(out, "%v %s\n", step, strconv.Quote(text[step.Start:step.End])); err != nil {
					return err
				}
			}
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
