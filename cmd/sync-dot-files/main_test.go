package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/sync-dot-files/internal/errs"
)

// isolate points every per-user location at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	configFile, verbosity = "", 0
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestExitStatus(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", exitStatus(1))
	var code exitStatus
	require.True(t, errors.As(err, &code))
	assert.Equal(t, 1, int(code))
	assert.Equal(t, "exit status 1", exitStatus(1).Error())
}

func TestVerdict(t *testing.T) {
	assert.Contains(t, verdict(true, "Clean", "Not clean"), "✓ Clean")
	assert.Contains(t, verdict(false, "Clean", "Not clean"), "✗ Not clean")
}

func TestRepoPath_NotInitialized(t *testing.T) {
	dir := isolate(t)
	err := execute(t, "--config", filepath.Join(dir, "config.yaml"), "repo-path")
	assert.True(t, errs.HasCode(err, errs.NotInitialized))
}

func TestInitThenRepoPath(t *testing.T) {
	dir := isolate(t)
	cfg := filepath.Join(dir, "settings.toml")

	require.NoError(t, execute(t, "--config", cfg, "init", "alice"))
	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alice")

	require.NoError(t, execute(t, "--config", cfg, "repo-path"))
}

func TestIsClean_MissingRepository(t *testing.T) {
	dir := isolate(t)
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, execute(t, "--config", cfg, "init", "alice"))

	assert.NoError(t, execute(t, "--config", cfg, "is-clean"))

	err := execute(t, "--config", cfg, "is-synced")
	var code exitStatus
	require.True(t, errors.As(err, &code))
	assert.Equal(t, 1, int(code))
}

func TestAdd_RequiresPath(t *testing.T) {
	isolate(t)
	assert.Error(t, execute(t, "add"))
}
