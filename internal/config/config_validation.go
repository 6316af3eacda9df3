// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rs/zerolog"
)

const (
	minIndentWidth = 1
	maxIndentWidth = 16
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the package's ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || inMemoryDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if w := cfg.UI.IndentWidth; w < minIndentWidth || w > maxIndentWidth {
		return fmt.Errorf("%w: indent width %d is outside %d..%d", ErrInvalidUIConfigs, w, minIndentWidth, maxIndentWidth)
	}

	if _, ok := styles.Registry[cfg.UI.HighlightStyle]; !ok {
		return fmt.Errorf("%w: unknown highlight style %q", ErrInvalidUIConfigs, cfg.UI.HighlightStyle)
	}

	if _, err := zerolog.ParseLevel(cfg.Logger.Level); err != nil || cfg.Logger.Level == "" {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLoggerConfigs, cfg.Logger.Level)
	}

	return nil
}

// inMemoryDSN reports whether dsn names an SQLite in-memory database.
func inMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
