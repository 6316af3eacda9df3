package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/migrations"
)

// DB is the settings database handle shared by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
