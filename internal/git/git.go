package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/ruminaider/sync-dot-files/internal/errs"
	"github.com/ruminaider/sync-dot-files/internal/shell"
)

const (
	DefaultHost     = "git@github.com"
	DefaultRepoName = "my-dot-files"
	RemoteName      = "origin"
)

// Gateway performs every git operation against the checkout. Reads that
// only inspect repository metadata go through go-git; everything that
// talks to the remote or mutates the checkout shells out to git.
type Gateway struct {
	Runner   shell.Runner
	Host     string
	RepoName string
}

// New returns a gateway that runs git through runner with the default host
// and repository name.
func New(runner shell.Runner) *Gateway {
	return &Gateway{Runner: runner, Host: DefaultHost, RepoName: DefaultRepoName}
}

// RemoteURL returns the origin URL expected for accountID,
// e.g. git@github.com:alice/my-dot-files.git.
func (g *Gateway) RemoteURL(accountID string) string {
	return fmt.Sprintf("%s:%s/%s.git", g.Host, accountID, g.RepoName)
}

// IsReady reports whether repoPath holds a usable checkout of expectedURL.
// A missing path is simply not ready; a path occupied by something else is
// an error.
func (g *Gateway) IsReady(ctx context.Context, repoPath, expectedURL string) (bool, error) {
	if _, err := os.Stat(repoPath); os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, errs.Wrapf(err, errs.IO, "inspecting %s", repoPath)
	}

	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return false, errs.Newf(errs.InvalidRepoState, "%s exists but is not a git repository", repoPath)
		}
		return false, errs.Wrapf(err, errs.InvalidRepoState, "opening %s", repoPath)
	}

	cfg, err := repo.Config()
	if err != nil {
		return false, errs.Wrapf(err, errs.InvalidRepoState, "reading config of %s", repoPath)
	}
	if cfg.Core.IsBare {
		return false, errs.Newf(errs.InvalidRepoState, "%s is a bare repository", repoPath)
	}

	remote, ok := cfg.Remotes[RemoteName]
	if !ok || len(remote.URLs) == 0 {
		return false, errs.Newf(errs.RemoteMismatch, "%s has no %s remote, expected %s", repoPath, RemoteName, expectedURL)
	}
	if remote.URLs[0] != expectedURL {
		return false, errs.Newf(errs.RemoteMismatch, "%s remote of %s is %s, expected %s", RemoteName, repoPath, remote.URLs[0], expectedURL)
	}
	return true, nil
}

// EnsureInitialized clones remoteURL into repoPath unless a matching
// checkout is already there. A mismatching checkout is reported, never
// replaced.
func (g *Gateway) EnsureInitialized(ctx context.Context, repoPath, remoteURL string) error {
	ready, err := g.IsReady(ctx, repoPath, remoteURL)
	if err != nil {
		return err
	}
	if ready {
		return nil
	}

	parent := filepath.Dir(repoPath)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return errs.Wrapf(err, errs.IO, "creating %s", parent)
	}
	_, err = g.run(ctx, parent, "clone", remoteURL, repoPath)
	return err
}

// IsWorkingTreeClean returns true if there are no staged, unstaged or
// untracked changes.
func (g *Gateway) IsWorkingTreeClean(ctx context.Context, repoPath string) (bool, error) {
	out, err := g.run(ctx, repoPath, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out == "", nil
}

// FetchAll runs git fetch --all.
func (g *Gateway) FetchAll(ctx context.Context, repoPath string) error {
	_, err := g.run(ctx, repoPath, "fetch", "--all")
	return err
}

// Pull runs git pull.
func (g *Gateway) Pull(ctx context.Context, repoPath string) error {
	_, err := g.run(ctx, repoPath, "pull")
	return err
}

// Stage adds paths to the index.
func (g *Gateway) Stage(ctx context.Context, repoPath string, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := g.run(ctx, repoPath, args...)
	return err
}

// CommitAll stages every change, including untracked files, and commits.
func (g *Gateway) CommitAll(ctx context.Context, repoPath, message string) error {
	if _, err := g.run(ctx, repoPath, "add", "-A"); err != nil {
		return err
	}
	_, err := g.run(ctx, repoPath, "commit", "-m", message)
	return err
}

// Push runs git push.
func (g *Gateway) Push(ctx context.Context, repoPath string) error {
	_, err := g.run(ctx, repoPath, "push")
	return err
}

// CurrentBranch returns the name of the checked out branch.
func (g *Gateway) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	return g.run(ctx, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
}

// AheadBehindCount counts commits on exactly one of HEAD and its origin
// counterpart. It only compares what the last fetch saw.
func (g *Gateway) AheadBehindCount(ctx context.Context, repoPath string) (int, error) {
	branch, err := g.CurrentBranch(ctx, repoPath)
	if err != nil {
		return 0, err
	}
	out, err := g.run(ctx, repoPath, "rev-list", "--count", fmt.Sprintf("HEAD...%s/%s", RemoteName, branch))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("parsing rev-list count %q: %w", out, err)
	}
	return n, nil
}

// run executes git with args in dir and returns trimmed stdout.
func (g *Gateway) run(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := g.Runner.Run(ctx, dir, "git", args...)
	if err != nil {
		return "", errs.Wrapf(err, errs.GitCommandFailed, "running git %s", args[0])
	}
	if !res.Success() {
		return "", errs.GitFailed("git "+strings.Join(args, " "), res.ExitCode, res.Stderr)
	}
	return strings.TrimSpace(res.Stdout), nil
}
