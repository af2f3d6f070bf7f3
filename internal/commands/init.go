package commands

import (
	"github.com/ruminaider/sync-dot-files/internal/config"
)

// InitResult reports the saved settings and the remote they point at.
type InitResult struct {
	Settings  config.Settings
	RemoteURL string
}

// Init records accountID in the settings, creating them on first use.
func (a *App) Init(accountID string) (*InitResult, error) {
	s, err := a.store.Initialize(accountID)
	if err != nil {
		return nil, err
	}
	return &InitResult{
		Settings:  s,
		RemoteURL: a.gateway.RemoteURL(s.AccountID),
	}, nil
}
