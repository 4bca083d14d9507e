// Package cmd provides the CLI commands for corepat.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/corepat/internal/config"
	"github.com/coregx/corepat/internal/logging"
)

// ErrNoMatch is returned by scan when no input contained a match.
var ErrNoMatch = errors.New("no match")

// rootOptions holds the persistent flags and the state they produce.
type rootOptions struct {
	configPath string
	debug      bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root command for the corepat CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "corepat",
		Short: "Scan text with composable pattern searchers",
		Long: `corepat compiles a regular expression into a tree of pattern searchers
and walks files with it, printing matches or the full step partition.

Matching is not backtracking: repetition takes maximal runs, concatenation
only joins touching matches, and alternatives are settled by a tie-break.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Load defaults from a YAML file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to stderr")

	cmd.AddCommand(newScanCmd(opts))
	cmd.AddCommand(newStepsCmd(opts))

	return cmd
}

// setup loads the configuration and builds the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	if o.debug {
		logCfg = logging.DebugConfig()
	}
	logCfg.Output = cmd.ErrOrStderr()
	o.logger = logging.Setup(logCfg)
	o.logger.Debug("configuration loaded",
		slog.String("path", o.configPath),
		slog.Int("workers", cfg.Scan.Workers),
		slog.String("color", cfg.Output.Color))
	return nil
}

// Execute runs the CLI and returns the process exit code: 0 when something
// matched, 1 when nothing did, 2 on errors.
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil && !errors.Is(err, ErrNoMatch) {
		fmt.Fprintln(os.Stderr, "corepat:", err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNoMatch):
		return 1
	default:
		return 2
	}
}
