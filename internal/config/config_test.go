package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	cfg, err := config.Load(t.TempDir(), "")
	require.NoError(t, err)
	require.Equal(t, "table", cfg.Format)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.DisabledRules)
	require.Zero(t, cfg.Threads)
}

func TestLoadReadsYaml(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".cooplint.yaml", `
format: json
threads: 4
disabledRules:
  - SCOPE_001
  - loop-without-cooperation
extensions:
  frameworkScopes:
    - serviceScope
  blockingCalls:
    - legacyRead
`)

	cfg, err := config.Load(dir, "")
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, 4, cfg.Threads)
	require.Equal(t, []string{"SCOPE_001", "loop-without-cooperation"}, cfg.DisabledRules)
	require.Equal(t, []string{"serviceScope"}, cfg.Extensions.FrameworkScopes)
	require.Equal(t, []string{"legacyRead"}, cfg.Extensions.BlockingCalls)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yaml", "format: tui\n")

	cfg, err := config.Load(dir, path)
	require.NoError(t, err)
	require.Equal(t, "tui", cfg.Format)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	_, err := config.Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".cooplint.yaml", "format: pdf\n")

	_, err := config.Load(dir, "")
	require.ErrorContains(t, err, "unknown format")

	dir = t.TempDir()
	writeConfig(t, dir, ".cooplint.yaml", "disabledRules: [NOT_A_RULE]\n")

	_, err = config.Load(dir, "")
	require.ErrorContains(t, err, "unknown rule")

	dir = t.TempDir()
	writeConfig(t, dir, ".cooplint.yaml", "threads: -1\n")

	_, err = config.Load(dir, "")
	require.ErrorContains(t, err, "threads")
}
