package config

import (
	"os"
	"path/filepath"
	resyntax "regexp/syntax"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corepat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfig_ReturnsDefaults(t *testing.T) {
	cfg := NewConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Syntax.SetThreshold)
	assert.Equal(t, 256, cfg.Syntax.MaxSetLiterals)
	assert.False(t, cfg.Syntax.CaseInsensitive)
	assert.Equal(t, runtime.NumCPU(), cfg.Scan.Workers)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad_MergesFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
syntax:
  case_insensitive: true
  set_threshold: 5
scan:
  workers: 2
output:
  color: never
  steps: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Syntax.CaseInsensitive)
	assert.Equal(t, 5, cfg.Syntax.SetThreshold)
	assert.Equal(t, 256, cfg.Syntax.MaxSetLiterals, "unset values keep defaults")
	assert.Equal(t, 2, cfg.Scan.Workers)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.True(t, cfg.Output.Steps)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"unknown field", "colour: never\n", false},
		{"bad yaml", "scan: [\n", false},
		{"bad color", "output:\n  color: rainbow\n", true},
		{"bad level", "log_level: loud\n", true},
		{"bad workers", "scan:\n  workers: -2\n", true},
		{"bad literals", "syntax:\n  max_set_literals: 100000\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSyntaxConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Syntax.CaseInsensitive = true
	cfg.Syntax.DotNL = true
	cfg.Syntax.SetThreshold = -1

	sc := cfg.SyntaxConfig()
	assert.NotZero(t, sc.Flags&resyntax.FoldCase)
	assert.NotZero(t, sc.Flags&resyntax.DotNL)
	assert.NotZero(t, sc.Flags&resyntax.PerlX, "Perl flags are kept")
	assert.Equal(t, 0, sc.SetThreshold)
	assert.NoError(t, sc.Validate())
}
