package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUIConfigs indicates invalid UI settings (for example, an
	// indent width outside 1..16 or an unknown highlight style).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidLoggerConfigs indicates an unknown log level.
	ErrInvalidLoggerConfigs = errors.New("invalid logger configuration")
)
