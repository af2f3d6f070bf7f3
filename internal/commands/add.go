package commands

import (
	"context"
	"fmt"

	"github.com/ruminaider/sync-dot-files/internal/errs"
	"github.com/ruminaider/sync-dot-files/internal/paths"
)

// Add moves a dotfile into the repository, links it back, starts tracking
// it and stages it. path may be home-relative, "~/"-prefixed or absolute
// under home. Returns the home-relative name that was tracked.
func (a *App) Add(ctx context.Context, path string) (string, error) {
	s, err := a.store.Load()
	if err != nil {
		return "", err
	}

	rel, ok := paths.HomeRelative(a.home, path)
	if !ok {
		return "", errs.Newf(errs.InvalidInput, "%s is not inside %s", path, a.home)
	}

	if err := a.gateway.EnsureInitialized(ctx, s.RepoPath, a.gateway.RemoteURL(s.AccountID)); err != nil {
		return "", fmt.Errorf("initializing repository: %w", err)
	}
	if err := a.links(s.RepoPath).Materialize(rel); err != nil {
		return "", err
	}
	// The file lives in the repository now; track it even if staging fails.
	if err := a.store.AddTrackedFile(rel); err != nil {
		return "", err
	}
	if err := a.gateway.Stage(ctx, s.RepoPath, rel); err != nil {
		return rel, fmt.Errorf("staging %s: %w", rel, err)
	}
	return rel, nil
}
