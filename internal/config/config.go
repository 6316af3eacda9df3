// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-dev-utils application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// Storage holds the settings database configuration.
	Storage Storage `envPrefix:"STORAGE_"`

	// Logger holds the log destination and level.
	Logger Logger `envPrefix:"LOGGER_"`

	// UI holds presentation settings of the terminal UI.
	UI UI `envPrefix:"UI_"`

	// JSON holds settings of the JSON transforms.
	JSON JSON `envPrefix:"JSON_"`

	// JSONFilePath is the optional path to a JSON (or JSONC) configuration
	// file. Populated via DEVUTILS_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the settings database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite settings database.
type DB struct {
	// DSN is the SQLite file path (or file: URI) of the settings database.
	// Env: DEVUTILS_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Logger holds log settings. The interactive client writes to File; CLI
// commands write to stderr.
type Logger struct {
	// File is the path of the client log file.
	// Env: DEVUTILS_LOGGER_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: DEVUTILS_LOGGER_LEVEL
	Level string `env:"LEVEL"`
}

// UI holds terminal UI settings.
type UI struct {
	// IndentWidth is the initial indent width of the JSON tab.
	// Env: DEVUTILS_UI_INDENT_WIDTH
	IndentWidth int `env:"INDENT_WIDTH"`

	// Highlight enables syntax highlighting of formatted JSON. A pointer so
	// that an explicit false survives merging with the defaults.
	// Env: DEVUTILS_UI_HIGHLIGHT
	Highlight *bool `env:"HIGHLIGHT"`

	// HighlightStyle is the chroma style name used for highlighting.
	// Env: DEVUTILS_UI_HIGHLIGHT_STYLE
	HighlightStyle string `env:"HIGHLIGHT_STYLE"`

	// ShowOnLaunch shows the window right after start instead of starting
	// hidden.
	// Env: DEVUTILS_UI_SHOW_ON_LAUNCH
	ShowOnLaunch bool `env:"SHOW_ON_LAUNCH"`
}

// HighlightEnabled reports whether highlighting is on. Unset means on.
func (u UI) HighlightEnabled() bool {
	return u.Highlight == nil || *u.Highlight
}

// JSON holds settings of the JSON transforms.
type JSON struct {
	// Lenient accepts comments and trailing commas in JSON input.
	// Env: DEVUTILS_JSON_LENIENT
	Lenient bool `env:"LENIENT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		withDefaults().
		build()
}
