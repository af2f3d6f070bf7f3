package commands

import (
	"github.com/spf13/afero"

	"github.com/ruminaider/sync-dot-files/internal/config"
	"github.com/ruminaider/sync-dot-files/internal/git"
	"github.com/ruminaider/sync-dot-files/internal/link"
	"github.com/ruminaider/sync-dot-files/internal/logging"
	"github.com/ruminaider/sync-dot-files/internal/paths"
	"github.com/ruminaider/sync-dot-files/internal/shell"
	csync "github.com/ruminaider/sync-dot-files/internal/sync"
)

// Options locates the user's files. Zero fields fall back to the real
// home directory, XDG settings location and the local filesystem.
type Options struct {
	Home         string
	SettingsFile string
	DefaultRepo  string
	FS           afero.Fs
	Runner       shell.Runner
	// Host and RepoName override the derived remote URL; used by tests to
	// point at a local bare repository.
	Host     string
	RepoName string
}

// App wires the settings store, git gateway, link manager and orchestrator.
type App struct {
	home    string
	fs      afero.Fs
	store   *config.Store
	gateway *git.Gateway
	orch    *csync.Orchestrator
}

// New builds an App from opts.
func New(opts Options) *App {
	if opts.Home == "" {
		opts.Home = paths.Home()
	}
	if opts.SettingsFile == "" {
		opts.SettingsFile = paths.SettingsFile()
	}
	if opts.DefaultRepo == "" {
		opts.DefaultRepo = paths.DefaultRepoDir()
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Runner == nil {
		opts.Runner = shell.Exec{}
	}

	gw := git.New(opts.Runner)
	if opts.Host != "" {
		gw.Host = opts.Host
	}
	if opts.RepoName != "" {
		gw.RepoName = opts.RepoName
	}

	a := &App{
		home:    opts.Home,
		fs:      opts.FS,
		store:   config.NewStore(opts.FS, opts.SettingsFile, opts.DefaultRepo),
		gateway: gw,
	}
	a.orch = csync.New(a.store, gw, func(repoPath string) csync.Linker {
		return a.links(repoPath)
	}, logging.Get("sync"))
	return a
}

func (a *App) links(repoPath string) *link.Manager {
	return link.New(a.fs, a.home, repoPath)
}

// SettingsFile returns where settings are persisted.
func (a *App) SettingsFile() string {
	return a.store.Path()
}

// RepoPath returns the configured repository path.
func (a *App) RepoPath() (string, error) {
	s, err := a.store.Load()
	if err != nil {
		return "", err
	}
	return s.RepoPath, nil
}
