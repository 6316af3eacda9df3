// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/models"
)

// Settings keys of the window state.
const (
	KeyWindowX      = "windowX"
	KeyWindowY      = "windowY"
	KeyWindowWidth  = "windowWidth"
	KeyWindowHeight = "windowHeight"
	KeySelectedTab  = "selectedTab"
)

// windowStateRepository stores [models.WindowState] as five rows of the
// settings table.
type windowStateRepository struct {
	db       *DB
	settings SettingsRepository
	logger   *logger.Logger
}

// NewWindowStateRepository constructs a [WindowStateRepository] on top of db.
func NewWindowStateRepository(db *DB, logger *logger.Logger) WindowStateRepository {
	return &windowStateRepository{
		db:       db,
		settings: NewSettingsRepository(db, logger),
		logger:   logger,
	}
}

func (r *windowStateRepository) Load(ctx context.Context) (models.WindowState, error) {
	log := logger.FromContext(ctx)

	settings, err := r.settings.GetAll(ctx)
	if err != nil {
		return models.WindowState{}, fmt.Errorf("error loading window state: %w", err)
	}

	var state models.WindowState
	state.Frame.X = parseFloatSetting(log, settings, KeyWindowX)
	state.Frame.Y = parseFloatSetting(log, settings, KeyWindowY)
	state.Frame.Width = parseFloatSetting(log, settings, KeyWindowWidth)
	state.Frame.Height = parseFloatSetting(log, settings, KeyWindowHeight)

	if raw, ok := settings[KeySelectedTab]; ok {
		tab, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn().Err(err).Str("func", "*windowStateRepository.Load").Str("key", KeySelectedTab).Msg("ignoring unreadable setting")
		} else {
			state.SelectedTab = models.Tab(tab)
		}
	}

	return state, nil
}

func (r *windowStateRepository) Save(ctx context.Context, state models.WindowState) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*windowStateRepository.Save").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	pairs := []struct {
		key   string
		value string
	}{
		{KeyWindowX, formatFloat(state.Frame.X)},
		{KeyWindowY, formatFloat(state.Frame.Y)},
		{KeyWindowWidth, formatFloat(state.Frame.Width)},
		{KeyWindowHeight, formatFloat(state.Frame.Height)},
		{KeySelectedTab, strconv.Itoa(int(state.SelectedTab))},
	}
	for _, p := range pairs {
		if err := upsertSetting(ctx, tx, p.key, p.value); err != nil {
			log.Err(err).Str("func", "*windowStateRepository.Save").Str("key", p.key).Msg("error saving window state")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*windowStateRepository.Save").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// parseFloatSetting returns 0 for absent or unreadable values.
func parseFloatSetting(log *logger.Logger, settings map[string]string, key string) float64 {
	raw, ok := settings[key]
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warn().Err(err).Str("func", "parseFloatSetting").Str("key", key).Msg("ignoring unreadable setting")
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
