package config_test

import (
	"testing"

	"github.com/ruminaider/sync-dot-files/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettings(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		input := []byte(`github_account: alice
repo_path: /home/alice/.config/sync-dot-files/repo
dotfiles:
  - .bashrc
  - .config/nvim/init.vim
`)
		s, err := config.Parse(input, config.YAML)
		require.NoError(t, err)
		assert.Equal(t, "alice", s.AccountID)
		assert.Equal(t, "/home/alice/.config/sync-dot-files/repo", s.RepoPath)
		assert.Equal(t, []string{".bashrc", ".config/nvim/init.vim"}, s.TrackedFiles)
	})

	t.Run("toml written by older releases", func(t *testing.T) {
		input := []byte(`github_account = "alice"
dotfiles = [".zshrc"]
repo_path = "/home/alice/.config/sync-dot-files/repo"
`)
		s, err := config.Parse(input, config.TOML)
		require.NoError(t, err)
		assert.Equal(t, "alice", s.AccountID)
		assert.Equal(t, []string{".zshrc"}, s.TrackedFiles)
	})

	t.Run("missing dotfiles key", func(t *testing.T) {
		s, err := config.Parse([]byte("github_account: alice\n"), config.YAML)
		require.NoError(t, err)
		assert.NotNil(t, s.TrackedFiles)
		assert.Empty(t, s.TrackedFiles)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`), config.YAML)
		assert.Error(t, err)
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := config.Parse([]byte(`github_account = `), config.TOML)
		assert.Error(t, err)
	})
}

func TestMarshalSettings(t *testing.T) {
	s := config.Settings{AccountID: "alice", RepoPath: "/repo"}

	data, err := config.Marshal(s, config.YAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "github_account: alice")
	assert.Contains(t, string(data), "dotfiles: []")

	data, err = config.Marshal(s, config.TOML)
	require.NoError(t, err)
	back, err := config.Parse(data, config.TOML)
	require.NoError(t, err)
	assert.Equal(t, "alice", back.AccountID)
	assert.Equal(t, "/repo", back.RepoPath)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, config.TOML, config.FormatFor("/x/sync-dot-files.toml"))
	assert.Equal(t, config.TOML, config.FormatFor("/x/SETTINGS.TOML"))
	assert.Equal(t, config.YAML, config.FormatFor("/x/config.yaml"))
	assert.Equal(t, config.YAML, config.FormatFor("/x/config"))
}

func TestSettingsClone(t *testing.T) {
	orig := config.Settings{TrackedFiles: []string{".bashrc"}}
	c := orig.Clone()
	c.TrackedFiles[0] = ".zshrc"
	assert.Equal(t, ".bashrc", orig.TrackedFiles[0])
}
