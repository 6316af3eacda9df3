// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "in-memory dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory mode uri", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "file:settings?mode=memory&cache=shared" }, wantErr: ErrInvalidStorageConfigs},
		{name: "path containing memory", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "/home/memory/settings.db" }},
		{name: "zero indent", mutate: func(c *StructuredConfig) { c.UI.IndentWidth = 0 }, wantErr: ErrInvalidUIConfigs},
		{name: "indent too wide", mutate: func(c *StructuredConfig) { c.UI.IndentWidth = 17 }, wantErr: ErrInvalidUIConfigs},
		{name: "max indent", mutate: func(c *StructuredConfig) { c.UI.IndentWidth = 16 }},
		{name: "unknown style", mutate: func(c *StructuredConfig) { c.UI.HighlightStyle = "no-such-style" }, wantErr: ErrInvalidUIConfigs},
		{name: "unknown level", mutate: func(c *StructuredConfig) { c.Logger.Level = "loud" }, wantErr: ErrInvalidLoggerConfigs},
		{name: "empty level", mutate: func(c *StructuredConfig) { c.Logger.Level = "" }, wantErr: ErrInvalidLoggerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
