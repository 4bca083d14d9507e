package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/corepat/syntax"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestScan_PrintsMatches(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "a1 b22\n")

	out, _, err := execute(t, "", "scan", `\d+`, path)
	require.NoError(t, err)
	assert.Equal(t, path+`:1-2:"1"`+"\n"+path+`:4-6:"22"`+"\n", out)
}

func TestScan_NoMatch(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "nothing here")

	out, _, err := execute(t, "", "scan", `\d`, path)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Empty(t, out)
	assert.Equal(t, 1, exitCode(err))
}

func TestScan_KeepsFileOrder(t *testing.T) {
	dir := t.TempDir()
	args := []string{"scan", "-j", "4", "x"}
	var want strings.Builder
	for _, name := range []string{"1.txt", "2.txt", "3.txt", "4.txt", "5.txt"} {
		path := writeFile(t, dir, name, "ax")
		args = append(args, path)
		want.WriteString(path + `:1-2:"x"` + "\n")
	}

	out, _, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)
}

func TestScan_Flags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		want    []string
	}{
		{"limit", "123", []string{"--limit", "1", `\d`}, []string{`:0-1:"1"`}},
		{"skip", "123", []string{"--skip", "2", `\d`}, []string{`:2-3:"3"`}},
		{"take", "123", []string{"--take", "2", `\d`}, []string{`:0-1:"1"`, `:1-2:"2"`}},
		{"not", "a1", []string{"--not", `\d`}, []string{`:0-1:"a"`}},
		{"ignore case", "xABC", []string{"-i", "abc"}, []string{`:1-4:"ABC"`}},
		{"steps", "abc", []string{"--steps", "b"}, []string{`:Reject(0, 1):"a"`, `:Match(1, 2):"b"`, `:Reject(2, 3):"c"`}},
		{"simplify", "bba", []string{"--steps", "--simplify", "a"}, []string{`:Reject(0, 2):"bb"`, `:Match(2, 3):"a"`}},
		{"set", "bazfoo", []string{"foo|bar|baz"}, []string{`:0-3:"baz"`, `:3-6:"foo"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "in.txt", tt.content)
			args := append([]string{"scan", "--no-mmap"}, tt.args...)
			args = append(args, path)

			out, _, err := execute(t, "", args...)
			require.NoError(t, err)

			var want strings.Builder
			for _, line := range tt.want {
				want.WriteString(path + line + "\n")
			}
			assert.Equal(t, want.String(), out)
		})
	}
}

func TestScan_Stdin(t *testing.T) {
	out, _, err := execute(t, "x1", "scan", `\d`, "-")
	require.NoError(t, err)
	assert.Equal(t, `-:1-2:"1"`+"\n", out)
}

func TestScan_Color(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "a1")

	out, _, err := execute(t, "", "scan", "--color", "always", `\d`, path)
	require.NoError(t, err)
	assert.Contains(t, out, highlightOn+`"1"`+highlightOff)

	_, _, err = execute(t, "", "scan", "--color", "rainbow", `\d`, path)
	assert.Error(t, err)
}

func TestScan_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "a")

	_, _, err := execute(t, "", "scan", `\bfoo`, path)
	assert.ErrorIs(t, err, syntax.ErrUnsupported)
	assert.Equal(t, 2, exitCode(err))

	_, _, err = execute(t, "", "scan", "a", filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoMatch))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "", "scan", "a")
	assert.Error(t, err, "scan needs a file")
}

func TestScan_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.txt", "ab")
	cfgPath := writeFile(t, dir, "corepat.yaml", "output:\n  steps: true\n  color: never\n")

	out, _, err := execute(t, "", "--config", cfgPath, "scan", "b", path)
	require.NoError(t, err)
	assert.Equal(t, path+`:Reject(0, 1):"a"`+"\n"+path+`:Match(1, 2):"b"`+"\n", out)

	bad := writeFile(t, dir, "bad.yaml", "output:\n  color: rainbow\n")
	_, _, err = execute(t, "", "--config", bad, "scan", "b", path)
	assert.Error(t, err)
}

func TestScan_DebugLogging(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "a1")

	_, errOut, err := execute(t, "", "--debug", "scan", `\d`, path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "pattern compiled")
	assert.Contains(t, errOut, "input scanned")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	_, errOut, err = execute(t, "", "scan", `\d`, path)
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestSteps(t *testing.T) {
	out, _, err := execute(t, "", "steps", "a+", "baa")
	require.NoError(t, err)
	assert.Equal(t, "Reject(0, 1) \"b\"\nMatch(1, 3) \"aa\"\n", out)

	out, _, err = execute(t, "", "steps", "--not", "a", "ab")
	require.NoError(t, err)
	assert.Equal(t, "Reject(0, 1) \"a\"\nMatch(1, 2) \"b\"\n", out)
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor("always", &buf))
	assert.False(t, useColor("never", &buf))
	assert.False(t, useColor("auto", &buf))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(ErrNoMatch))
	assert.Equal(t, 2, exitCode(errors.New("boom")))
}
