package commands

import (
	"context"

	csync "github.com/ruminaider/sync-dot-files/internal/sync"
)

// IsClean reports whether the repository has no pending changes.
func (a *App) IsClean(ctx context.Context) (bool, error) {
	return a.orch.IsClean(ctx)
}

// IsSynced reports whether history and links match the remote.
func (a *App) IsSynced(ctx context.Context) (bool, error) {
	return a.orch.IsSynced(ctx)
}

// Status returns the combined clean/synced report with per-file link states.
func (a *App) Status(ctx context.Context) (csync.Status, error) {
	return a.orch.Status(ctx)
}

// Sync runs a full reconciliation.
func (a *App) Sync(ctx context.Context) (csync.Result, error) {
	return a.orch.Sync(ctx)
}
