package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// AppName names the per-user config and state directories.
const AppName = "sync-dot-files"

// SettingsEnv overrides the settings file location.
const SettingsEnv = "SYNC_DOT_FILES_CONFIG"

// Home returns the user's home directory.
func Home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns $XDG_CONFIG_HOME/sync-dot-files.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// SettingsFile returns $SYNC_DOT_FILES_CONFIG, or config.yaml in ConfigDir.
func SettingsFile() string {
	if p := os.Getenv(SettingsEnv); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultRepoDir returns the clone location used when settings are first created.
func DefaultRepoDir() string {
	return filepath.Join(ConfigDir(), "repo")
}

// LogFile returns $XDG_STATE_HOME/sync-dot-files/sync-dot-files.log.
func LogFile() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

// HomeRelative converts p into a path relative to home. p may already be
// relative, start with "~/", or be absolute under home. ok is false when p
// points outside home.
func HomeRelative(home, p string) (rel string, ok bool) {
	switch {
	case p == "~":
		return "", false
	case strings.HasPrefix(p, "~/"):
		p = filepath.Join(home, p[2:])
	case !filepath.IsAbs(p):
		p = filepath.Join(home, p)
	}
	rel, err := filepath.Rel(home, filepath.Clean(p))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
