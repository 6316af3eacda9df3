// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

// Default values applied when no other source sets a field.
const (
	DefaultDirName        = ".devutils"
	DefaultDBFile         = "settings.db"
	DefaultLogFile        = "devutils.log"
	DefaultLogLevel       = "info"
	DefaultIndentWidth    = 2
	DefaultHighlightStyle = "monokai"
)

// DefaultDir returns the per-user data directory, $HOME/.devutils. It falls
// back to a relative .devutils when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	dir := DefaultDir()
	highlight := true

	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: filepath.Join(dir, DefaultDBFile)}},
		Logger: Logger{
			File:  filepath.Join(dir, DefaultLogFile),
			Level: DefaultLogLevel,
		},
		UI: UI{
			IndentWidth:    DefaultIndentWidth,
			Highlight:      &highlight,
			HighlightStyle: DefaultHighlightStyle,
		},
	}
}
