package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dev-utils/internal/logger"
)

// settingsRepository is the SQLite-backed implementation of
// [SettingsRepository].
type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSettingQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.Get").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrSettingNotFound, key)
		}
		log.Err(err).Str("func", "*settingsRepository.Get").Str("key", key).Msg("error reading setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	if err := upsertSetting(ctx, r.db, key, value); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsRepository.Set").Str("key", key).Msg("error writing setting")
		return err
	}
	return nil
}

func (r *settingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllSettingsQuery()
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetAll").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetAll").Msg("error querying settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			log.Err(err).Str("func", "*settingsRepository.GetAll").Msg("error scanning settings row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetAll").Msg("error iterating settings rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return settings, nil
}

func upsertSetting(ctx context.Context, exec execer, key, value string) error {
	query, args, err := buildUpsertSettingQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: setting %s: %w", ErrExecutingQuery, key, err)
	}
	return nil
}
