package shell_test

import (
	"context"
	"testing"

	"github.com/ruminaider/sync-dot-files/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_Success(t *testing.T) {
	dir := t.TempDir()
	res, err := shell.Exec{}.Run(context.Background(), dir, "sh", "-c", "pwd; echo warn >&2")
	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Contains(t, res.Stdout, dir)
	assert.Equal(t, "warn", res.Stderr)
}

func TestExec_NonZeroExit(t *testing.T) {
	res, err := shell.Exec{}.Run(context.Background(), t.TempDir(), "sh", "-c", "echo boom >&2; exit 3")
	require.NoError(t, err)
	assert.False(t, res.Success())
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "boom", res.Stderr)
}

func TestExec_MissingBinary(t *testing.T) {
	_, err := shell.Exec{}.Run(context.Background(), t.TempDir(), "definitely-not-a-real-binary-xyz")
	assert.Error(t, err)
}

func TestExec_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := shell.Exec{}.Run(ctx, t.TempDir(), "sleep", "5")
	assert.Error(t, err)
}
