package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/coregx/corepat/search"
)

const (
	highlightOn  = "\x1b[1;31m"
	highlightOff = "\x1b[0m"
)

// printer formats the steps of one haystack.
type printer struct {
	color bool
	steps bool
}

// write prints the matches of s, or every step when p.steps is set, each
// line prefixed with name. It returns the number of matches.
func (p printer) write(w *bytes.Buffer, name, haystack string, s search.Searcher) int {
	matches := 0
	if p.steps {
		for step := s.Next(); !step.IsDone(); step = s.Next() {
			if step.IsMatch() {
				matches++
			}
			fmt.Fprintf(w, "%s:%v:%s\n", name, step, p.text(haystack[step.Start:step.End], step.IsMatch()))
		}
		return matches
	}

	for {
		start, end, ok := search.NextMatch(s)
		if !ok {
			return matches
		}
		matches++
		fmt.Fprintf(w, "%s:%d-%d:%s\n", name, start, end, p.text(haystack[start:end], true))
	}
}

// text quotes s so every step stays on one line.
func (p printer) text(s string, match bool) string {
	q := strconv.Quote(s)
	if p.color && match {
		return highlightOn + q + highlightOff
	}
	return q
}

// useColor resolves a color mode against the output writer.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}
