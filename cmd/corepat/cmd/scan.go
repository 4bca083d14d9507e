package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coregx/corepat"
	"github.com/coregx/corepat/internal/mapfile"
)

// scanOptions holds CLI flags for scan.
type scanOptions struct {
	pattern patternOptions
	steps   bool
	color   string
	workers int
	noMmap  bool
}

func newScanCmd(root *rootOptions) *cobra.Command {
	var opts scanOptions

	cmd := &cobra.Command{
		Use:   "scan [flags] PATTERN FILE...",
		Short: "Print the matches of PATTERN in each FILE",
		Long: `Print every match of PATTERN in each FILE as file:start-end:"text".
Offsets are byte offsets. A FILE of - reads standard input.

Exits with status 1 when nothing matched.

Examples:
  corepat scan '\d+' server.log
  corepat scan --limit 3 'foo|bar|baz' *.txt
  corepat scan --steps --simplify 'TODO' main.go`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), cmd, root, opts, args[0], args[1:])
		},
	}

	opts.pattern.register(cmd)
	cmd.Flags().BoolVar(&opts.steps, "steps", false, "Print every step instead of only matches")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Highlight matches: auto, always, never")
	cmd.Flags().IntVarP(&opts.workers, "workers", "j", 0, "Number of files scanned concurrently (0 uses the config)")
	cmd.Flags().BoolVar(&opts.noMmap, "no-mmap", false, "Read files instead of memory-mapping them")

	return cmd
}

// fileResult is the buffered output of one input.
type fileResult struct {
	output  []byte
	matches int
}

func runScan(ctx context.Context, cmd *cobra.Command, root *rootOptions, opts scanOptions, pattern string, files []string) error {
	cfg := root.cfg
	log := root.logger

	m, err := opts.pattern.compile(pattern, cfg)
	if err != nil {
		return err
	}
	log.Debug("pattern compiled", slog.String("pattern", pattern), slog.String("expr", m.Expr().String()))

	// flags override the configuration only when given
	flags := cmd.Flags()
	if !flags.Changed("steps") {
		opts.steps = cfg.Output.Steps
	}
	if !flags.Changed("color") {
		opts.color = cfg.Output.Color
	}
	if !flags.Changed("no-mmap") {
		opts.noMmap = cfg.Scan.NoMmap
	}
	if opts.workers <= 0 {
		opts.workers = cfg.Scan.Workers
	}
	switch opts.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q: want auto, always or never", opts.color)
	}

	out := cmd.OutOrStdout()
	p := printer{color: useColor(opts.color, out), steps: opts.steps}
	stdin := cmd.InOrStdin()

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)
	for i, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, size, err := scanFile(m, p, name, stdin, opts.noMmap)
			if err != nil {
				return fmt.Errorf("scan %s: %w", name, err)
			}
			results[i] = res
			log.Debug("input scanned",
				slog.String("file", name),
				slog.Int("bytes", size),
				slog.Int("matches", res.matches))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for _, res := range results {
		if _, err := out.Write(res.output); err != nil {
			return err
		}
		total += res.matches
	}
	log.Debug("scan finished", slog.Int("files", len(files)), slog.Int("matches", total))
	if total == 0 {
		return ErrNoMatch
	}
	return nil
}

// scanFile runs m over one input. The output is copied into the result
// before the haystack is released.
func scanFile(m *corepat.Matcher, p printer, name string, stdin io.Reader, noMmap bool) (fileResult, int, error) {
	f, err := openInput(name, stdin, noMmap)
	if err != nil {
		return fileResult{}, 0, err
	}
	defer f.Close()

	h := f.String()
	var buf bytes.Buffer
	matches := p.write(&buf, name, h, m.Searcher(h))
	return fileResult{output: buf.Bytes(), matches: matches}, f.Len(), nil
}

func openInput(name string, stdin io.Reader, noMmap bool) (*mapfile.File, error) {
	if name == "-" {
		return mapfile.Read(name, stdin)
	}
	if !noMmap {
		return mapfile.Open(name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mapfile.Read(name, f)
}
