// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const settingsTable = "settings"

// qb builds SQLite statements with ? placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectSettingQuery(key string) (string, []any, error) {
	return qb.
		Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSelectAllSettingsQuery() (string, []any, error) {
	return qb.
		Select("key", "value").
		From(settingsTable).
		OrderBy("key").
		ToSql()
}

func buildUpsertSettingQuery(key, value string) (string, []any, error) {
	return qb.
		Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}
