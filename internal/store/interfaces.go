package store

import (
	"context"

	"github.com/MKhiriev/go-dev-utils/models"
)

// SettingsRepository is the key/value access to the settings table.
type SettingsRepository interface {
	// Get returns the value stored under key or ErrSettingNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// GetAll returns every stored pair.
	GetAll(ctx context.Context) (map[string]string, error)
}

// WindowStateRepository persists the window frame and selected tab.
type WindowStateRepository interface {
	// Load returns the persisted state. Missing or unreadable keys come back
	// as zero values.
	Load(ctx context.Context) (models.WindowState, error)
	// Save writes the frame and tab in a single transaction.
	Save(ctx context.Context, state models.WindowState) error
}
