package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dev-utils/internal/config"
	"github.com/MKhiriev/go-dev-utils/internal/logger"
)

// ClientStorages groups the settings repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Settings is the raw key/value repository.
	Settings SettingsRepository
	// WindowState persists the window frame and selected tab.
	WindowState WindowStateRepository

	db *DB
}

// NewClientStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file and its directory if they do not exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on the shared connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Settings:    NewSettingsRepository(db, logger),
		WindowState: NewWindowStateRepository(db, logger),
		db:          db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
