// Package link maintains the link farm: one symlink in the home directory
// per tracked file, pointing at its copy inside the repository.
package link

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ruminaider/sync-dot-files/internal/errs"
)

// State is the observed condition of a tracked file's home path.
type State int

const (
	Absent State = iota
	CorrectLink
	WrongTarget
	NotALink
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case CorrectLink:
		return "linked"
	case WrongTarget:
		return "wrong target"
	case NotALink:
		return "not a symlink"
	default:
		return "unknown"
	}
}

// Paths are the two ends of a tracked file's link.
type Paths struct {
	Home string
	Repo string
}

// Manager links files between home and repo. The filesystem must support
// symlinks (afero.OsFs does; afero.MemMapFs does not).
type Manager struct {
	fs   afero.Fs
	home string
	repo string
}

// New returns a manager for files under home mirrored into repo.
func New(fs afero.Fs, home, repo string) *Manager {
	return &Manager{fs: fs, home: home, repo: repo}
}

// Expected returns where file lives in the home directory and in the repository.
func (m *Manager) Expected(file string) Paths {
	return Paths{
		Home: filepath.Join(m.home, file),
		Repo: filepath.Join(m.repo, file),
	}
}

// Materialize moves file from home into the repository and leaves a symlink
// behind at its old location.
func (m *Manager) Materialize(file string) error {
	p := m.Expected(file)

	if _, err := m.lstat(p.Home); err != nil {
		if os.IsNotExist(err) {
			return errs.Newf(errs.IO, "%s does not exist", p.Home)
		}
		return errs.Wrapf(err, errs.IO, "inspecting %s", p.Home)
	}
	if _, err := m.lstat(p.Repo); err == nil {
		return errs.Newf(errs.IO, "%s already exists in the repository", file)
	} else if !os.IsNotExist(err) {
		return errs.Wrapf(err, errs.IO, "inspecting %s", p.Repo)
	}

	if err := m.fs.MkdirAll(filepath.Dir(p.Repo), 0755); err != nil {
		return errs.Wrapf(err, errs.IO, "creating %s", filepath.Dir(p.Repo))
	}
	if err := m.fs.Rename(p.Home, p.Repo); err != nil {
		return errs.Wrapf(err, errs.IO, "moving %s into the repository", file)
	}
	return m.symlink(p)
}

// Verify reports the state of file's home path.
func (m *Manager) Verify(file string) (State, error) {
	p := m.Expected(file)

	info, err := m.lstat(p.Home)
	if os.IsNotExist(err) {
		return Absent, nil
	}
	if err != nil {
		return Absent, errs.Wrapf(err, errs.IO, "inspecting %s", p.Home)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return NotALink, nil
	}

	reader, ok := m.fs.(afero.LinkReader)
	if !ok {
		return Absent, errs.New(errs.IO, "filesystem cannot read symlinks")
	}
	target, err := reader.ReadlinkIfPossible(p.Home)
	if err != nil {
		return Absent, errs.Wrapf(err, errs.IO, "reading link %s", p.Home)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(p.Home), target)
	}
	if filepath.Clean(target) != filepath.Clean(p.Repo) {
		return WrongTarget, nil
	}
	return CorrectLink, nil
}

// Repair recreates a missing link from the repository copy. Any existing
// home path is left untouched and reported as an error.
func (m *Manager) Repair(file string) error {
	state, err := m.Verify(file)
	if err != nil {
		return err
	}
	if state != Absent {
		return errs.Newf(errs.IO, "refusing to replace %s: %s", file, state)
	}

	p := m.Expected(file)
	if _, err := m.lstat(p.Repo); err != nil {
		return errs.Wrapf(err, errs.IO, "%s is missing from the repository", file)
	}
	if err := m.fs.MkdirAll(filepath.Dir(p.Home), 0755); err != nil {
		return errs.Wrapf(err, errs.IO, "creating %s", filepath.Dir(p.Home))
	}
	return m.symlink(p)
}

func (m *Manager) symlink(p Paths) error {
	linker, ok := m.fs.(afero.Linker)
	if !ok {
		return errs.New(errs.IO, "filesystem cannot create symlinks")
	}
	if err := linker.SymlinkIfPossible(p.Repo, p.Home); err != nil {
		return errs.Wrapf(err, errs.IO, "linking %s", p.Home)
	}
	return nil
}

func (m *Manager) lstat(name string) (os.FileInfo, error) {
	if l, ok := m.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return m.fs.Stat(name)
}
