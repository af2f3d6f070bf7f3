package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/sync-dot-files/internal/config"
	"github.com/ruminaider/sync-dot-files/internal/errs"
)

const (
	settingsPath = "/home/alice/.config/sync-dot-files/config.yaml"
	defaultRepo  = "/home/alice/.config/sync-dot-files/repo"
)

func newStore(t *testing.T) (*config.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return config.NewStore(fs, settingsPath, defaultRepo), fs
}

func TestStore_LoadNotInitialized(t *testing.T) {
	store, _ := newStore(t)
	_, err := store.Load()
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.NotInitialized))
}

func TestStore_InitializeFresh(t *testing.T) {
	store, fs := newStore(t)

	s, err := store.Initialize("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", s.AccountID)
	assert.Equal(t, defaultRepo, s.RepoPath)
	assert.Empty(t, s.TrackedFiles)

	exists, err := afero.Exists(fs, settingsPath)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded.AccountID)
	assert.Equal(t, defaultRepo, loaded.RepoPath)
	assert.Equal(t, []string{}, loaded.TrackedFiles)
}

func TestStore_InitializePreservesExisting(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Save(config.Settings{
		AccountID:    "alice",
		RepoPath:     "/srv/dotfiles",
		TrackedFiles: []string{".bashrc"},
	}))

	s, err := store.Initialize("bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", s.AccountID)
	assert.Equal(t, "/srv/dotfiles", s.RepoPath)
	assert.Equal(t, []string{".bashrc"}, s.TrackedFiles)
}

func TestStore_InitializeRejectsEmptyAccount(t *testing.T) {
	store, _ := newStore(t)
	_, err := store.Initialize("")
	assert.True(t, errs.HasCode(err, errs.InvalidInput))
}

func TestStore_AddTrackedFile(t *testing.T) {
	t.Run("not initialized", func(t *testing.T) {
		store, _ := newStore(t)
		err := store.AddTrackedFile(".bashrc")
		assert.True(t, errs.HasCode(err, errs.NotInitialized))
	})

	t.Run("appends in order", func(t *testing.T) {
		store, _ := newStore(t)
		_, err := store.Initialize("alice")
		require.NoError(t, err)

		require.NoError(t, store.AddTrackedFile(".bashrc"))
		require.NoError(t, store.AddTrackedFile(".gitconfig"))

		s, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{".bashrc", ".gitconfig"}, s.TrackedFiles)
	})
}

func TestStore_LoadReturnsCopy(t *testing.T) {
	store, _ := newStore(t)
	_, err := store.Initialize("alice")
	require.NoError(t, err)
	require.NoError(t, store.AddTrackedFile(".bashrc"))

	s, err := store.Load()
	require.NoError(t, err)
	s.TrackedFiles[0] = ".zshrc"

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, ".bashrc", again.TrackedFiles[0])
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	store, fs := newStore(t)
	_, err := store.Initialize("alice")
	require.NoError(t, err)
	require.NoError(t, store.AddTrackedFile(".bashrc"))

	entries, err := afero.ReadDir(fs, "/home/alice/.config/sync-dot-files")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.yaml", entries[0].Name())
}

func TestStore_TOMLFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/home/alice/.config/sync-dot-files/sync-dot-files.toml"
	require.NoError(t, afero.WriteFile(fs, path, []byte(`github_account = "alice"
dotfiles = [".vimrc"]
repo_path = "/home/alice/.config/sync-dot-files/repo"
`), 0644))

	store := config.NewStore(fs, path, defaultRepo)
	require.NoError(t, store.AddTrackedFile(".tmux.conf"))

	s, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{".vimrc", ".tmux.conf"}, s.TrackedFiles)
}

func TestStore_CorruptFile(t *testing.T) {
	store, fs := newStore(t)
	require.NoError(t, afero.WriteFile(fs, settingsPath, []byte("{{{"), 0644))

	_, err := store.Load()
	assert.True(t, errs.HasCode(err, errs.IO))
}
