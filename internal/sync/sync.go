// Package sync decides whether the link farm and the remote repository
// agree, and reconciles them.
package sync

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ruminaider/sync-dot-files/internal/config"
	"github.com/ruminaider/sync-dot-files/internal/link"
)

// CommitMessage is used for every commit created by Sync.
const CommitMessage = "Update dotfiles by Sync-dot-files"

// SettingsLoader supplies a fresh copy of the settings on every call.
type SettingsLoader interface {
	Load() (config.Settings, error)
}

// Repository is the subset of the git gateway the orchestrator drives.
type Repository interface {
	RemoteURL(accountID string) string
	IsReady(ctx context.Context, repoPath, expectedURL string) (bool, error)
	EnsureInitialized(ctx context.Context, repoPath, remoteURL string) error
	IsWorkingTreeClean(ctx context.Context, repoPath string) (bool, error)
	FetchAll(ctx context.Context, repoPath string) error
	Pull(ctx context.Context, repoPath string) error
	CommitAll(ctx context.Context, repoPath, message string) error
	Push(ctx context.Context, repoPath string) error
	AheadBehindCount(ctx context.Context, repoPath string) (int, error)
}

// Linker verifies and repairs the link of a single tracked file.
type Linker interface {
	Verify(file string) (link.State, error)
	Repair(file string) error
}

// Orchestrator composes settings, repository and links. It holds no state
// between calls; readiness is re-checked every time.
type Orchestrator struct {
	settings SettingsLoader
	repo     Repository
	links    func(repoPath string) Linker
	log      zerolog.Logger
}

// New returns an orchestrator. links builds a Linker for the configured
// repository path.
func New(settings SettingsLoader, repo Repository, links func(repoPath string) Linker, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{settings: settings, repo: repo, links: links, log: log}
}

// LinkWarning records a tracked file Sync could not link.
type LinkWarning struct {
	File  string
	State link.State
	Err   error
}

func (w LinkWarning) String() string {
	if w.Err != nil {
		return fmt.Sprintf("%s: %v", w.File, w.Err)
	}
	return fmt.Sprintf("%s: %s", w.File, w.State)
}

// Result describes what a successful Sync did.
type Result struct {
	Committed bool
	Relinked  []string
	Warnings  []LinkWarning
}

// FileStatus is the link state of one tracked file.
type FileStatus struct {
	File  string
	State link.State
}

// Status combines IsClean and IsSynced for a single report.
type Status struct {
	Ready  bool
	Clean  bool
	Synced bool
	Files  []FileStatus
}

// ready loads settings and checks the checkout they point at.
func (o *Orchestrator) ready(ctx context.Context) (config.Settings, bool, error) {
	s, err := o.settings.Load()
	if err != nil {
		return config.Settings{}, false, err
	}
	ok, err := o.repo.IsReady(ctx, s.RepoPath, o.repo.RemoteURL(s.AccountID))
	if err != nil {
		return s, false, err
	}
	return s, ok, nil
}

// IsClean reports whether the checkout has no pending changes. A checkout
// that does not exist yet has nothing to compare and counts as clean.
func (o *Orchestrator) IsClean(ctx context.Context) (bool, error) {
	s, ok, err := o.ready(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		o.log.Info().Str("repo", s.RepoPath).Msg("The repository is not ready")
		return true, nil
	}
	return o.repo.IsWorkingTreeClean(ctx, s.RepoPath)
}

// IsSynced reports whether local history matches origin and every tracked
// file is correctly linked. A missing checkout is never synced.
func (o *Orchestrator) IsSynced(ctx context.Context) (bool, error) {
	s, ok, err := o.ready(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		o.log.Info().Str("repo", s.RepoPath).Msg("The repository is not ready")
		return false, nil
	}
	return o.synced(ctx, s)
}

func (o *Orchestrator) synced(ctx context.Context, s config.Settings) (bool, error) {
	if err := o.repo.FetchAll(ctx, s.RepoPath); err != nil {
		return false, fmt.Errorf("fetching: %w", err)
	}
	n, err := o.repo.AheadBehindCount(ctx, s.RepoPath)
	if err != nil {
		return false, err
	}
	if n != 0 {
		o.log.Debug().Int("commits", n).Msg("History differs from origin")
		return false, nil
	}

	links := o.links(s.RepoPath)
	for _, f := range s.TrackedFiles {
		state, err := links.Verify(f)
		if err != nil {
			return false, err
		}
		if state != link.CorrectLink {
			o.log.Debug().Str("file", f).Stringer("state", state).Msg("Dotfile not linked")
			return false, nil
		}
	}
	return true, nil
}

// Status evaluates cleanliness, history sync and every link in one pass.
func (o *Orchestrator) Status(ctx context.Context) (Status, error) {
	s, ok, err := o.ready(ctx)
	if err != nil {
		return Status{}, err
	}

	st := Status{Ready: ok, Clean: true}
	links := o.links(s.RepoPath)
	for _, f := range s.TrackedFiles {
		state, err := links.Verify(f)
		if err != nil {
			return Status{}, err
		}
		st.Files = append(st.Files, FileStatus{File: f, State: state})
	}
	if !ok {
		return st, nil
	}

	if st.Clean, err = o.repo.IsWorkingTreeClean(ctx, s.RepoPath); err != nil {
		return Status{}, err
	}
	if st.Synced, err = o.synced(ctx, s); err != nil {
		return Status{}, err
	}
	return st, nil
}

// Sync clones if needed, pulls, commits and pushes local changes, then
// re-creates missing links. Failures before the link step abort without
// rollback; link problems are collected as warnings.
func (o *Orchestrator) Sync(ctx context.Context) (Result, error) {
	s, err := o.settings.Load()
	if err != nil {
		return Result{}, err
	}
	url := o.repo.RemoteURL(s.AccountID)

	if err := o.repo.EnsureInitialized(ctx, s.RepoPath, url); err != nil {
		return Result{}, fmt.Errorf("initializing repository: %w", err)
	}

	o.log.Info().Msg("Pulling the repository")
	if err := o.repo.Pull(ctx, s.RepoPath); err != nil {
		return Result{}, fmt.Errorf("pulling the repository: %w", err)
	}

	var res Result
	clean, err := o.repo.IsWorkingTreeClean(ctx, s.RepoPath)
	if err != nil {
		return Result{}, err
	}
	if !clean {
		o.log.Info().Msg("Committing the changes")
		if err := o.repo.CommitAll(ctx, s.RepoPath, CommitMessage); err != nil {
			return Result{}, fmt.Errorf("committing: %w", err)
		}
		res.Committed = true

		o.log.Info().Msg("Pushing the changes")
		if err := o.repo.Push(ctx, s.RepoPath); err != nil {
			return res, fmt.Errorf("pushing: %w", err)
		}
	}
	o.log.Info().Msg("Repository is synced")

	links := o.links(s.RepoPath)
	for _, f := range s.TrackedFiles {
		state, err := links.Verify(f)
		if err != nil {
			o.warn(&res, LinkWarning{File: f, Err: err})
			continue
		}
		switch state {
		case link.CorrectLink:
			o.log.Debug().Str("file", f).Msg("Linked")
		case link.Absent:
			o.log.Info().Str("file", f).Msg("Linking from the repository")
			if err := links.Repair(f); err != nil {
				o.warn(&res, LinkWarning{File: f, State: state, Err: err})
				continue
			}
			res.Relinked = append(res.Relinked, f)
		default:
			o.warn(&res, LinkWarning{File: f, State: state})
		}
	}
	return res, nil
}

func (o *Orchestrator) warn(res *Result, w LinkWarning) {
	o.log.Warn().Str("file", w.File).AnErr("error", w.Err).Msgf("%s is not linked to the repository", w.File)
	res.Warnings = append(res.Warnings, w)
}
