package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ruminaider/sync-dot-files/internal/errs"
)

// Store owns the settings file. Callers only ever see copies of Settings.
type Store struct {
	fs          afero.Fs
	path        string
	defaultRepo string
}

// NewStore returns a store for the settings file at path. defaultRepo is the
// RepoPath written when settings are first created.
func NewStore(fs afero.Fs, path, defaultRepo string) *Store {
	return &Store{fs: fs, path: path, defaultRepo: defaultRepo}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings, failing with NotInitialized when none exist.
func (s *Store) Load() (Settings, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if os.IsNotExist(err) {
		return Settings{}, errs.Newf(errs.NotInitialized, "no settings at %s, run init first", s.path)
	}
	if err != nil {
		return Settings{}, errs.Wrapf(err, errs.IO, "reading %s", s.path)
	}
	settings, err := Parse(data, FormatFor(s.path))
	if err != nil {
		return Settings{}, errs.Wrapf(err, errs.IO, "loading %s", s.path)
	}
	return settings, nil
}

// Save replaces the settings file. The record is written to a sibling temp
// file first and renamed over the old one.
func (s *Store) Save(settings Settings) error {
	data, err := Marshal(settings, FormatFor(s.path))
	if err != nil {
		return errs.Wrap(err, errs.IO, "encoding settings")
	}
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errs.Wrapf(err, errs.IO, "creating %s", dir)
	}

	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errs.Wrapf(err, errs.IO, "writing %s", s.path)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return errs.Wrapf(err, errs.IO, "writing %s", s.path)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return errs.Wrapf(err, errs.IO, "writing %s", s.path)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		s.fs.Remove(tmpName)
		return errs.Wrapf(err, errs.IO, "replacing %s", s.path)
	}
	return nil
}

// Initialize records accountID. Existing settings keep their RepoPath and
// TrackedFiles; otherwise a fresh record with the default RepoPath is created.
func (s *Store) Initialize(accountID string) (Settings, error) {
	if accountID == "" {
		return Settings{}, errs.New(errs.InvalidInput, "account must not be empty")
	}

	settings, err := s.Load()
	switch {
	case errs.HasCode(err, errs.NotInitialized):
		settings = Settings{RepoPath: s.defaultRepo, TrackedFiles: []string{}}
	case err != nil:
		return Settings{}, err
	}
	if settings.RepoPath == "" {
		settings.RepoPath = s.defaultRepo
	}

	settings.AccountID = accountID
	if err := s.Save(settings); err != nil {
		return Settings{}, err
	}
	return settings.Clone(), nil
}

// AddTrackedFile appends path to TrackedFiles and persists.
func (s *Store) AddTrackedFile(path string) error {
	settings, err := s.Load()
	if err != nil {
		return err
	}
	settings.TrackedFiles = append(settings.TrackedFiles, path)
	return s.Save(settings)
}
