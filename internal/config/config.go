package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// Settings is the persisted record: who owns the remote, where it is
// checked out, and which home-relative files are tracked.
type Settings struct {
	AccountID    string   `yaml:"github_account" toml:"github_account"`
	RepoPath     string   `yaml:"repo_path" toml:"repo_path"`
	TrackedFiles []string `yaml:"dotfiles" toml:"dotfiles"`
}

// Clone returns a copy that shares no memory with s.
func (s Settings) Clone() Settings {
	c := s
	c.TrackedFiles = append([]string{}, s.TrackedFiles...)
	return c
}

// Format selects the on-disk encoding.
type Format int

const (
	YAML Format = iota
	TOML
)

// FormatFor picks the encoding from a file extension. Anything that is not
// .toml is treated as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOML
	}
	return YAML
}

// Parse decodes settings.
func Parse(data []byte, format Format) (Settings, error) {
	var s Settings
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &s)
	default:
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if s.TrackedFiles == nil {
		s.TrackedFiles = []string{}
	}
	return s, nil
}

// Marshal encodes settings.
func Marshal(s Settings, format Format) ([]byte, error) {
	if s.TrackedFiles == nil {
		s.TrackedFiles = []string{}
	}
	switch format {
	case TOML:
		return toml.Marshal(s)
	default:
		return yaml.Marshal(s)
	}
}
