// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal window of DevUtils: three tool tabs inside a
// bubbletea alt-screen program whose visibility and geometry are driven by
// a [window.Lifecycle].
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-dev-utils/internal/config"
	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/internal/service"
	"github.com/MKhiriev/go-dev-utils/internal/window"
)

// Options tunes the presentation.
type Options struct {
	IndentWidth    int
	Highlight      bool
	HighlightStyle string
}

// OptionsFromConfig maps the UI section of the configuration.
func OptionsFromConfig(cfg config.UI) Options {
	return Options{
		IndentWidth:    cfg.IndentWidth,
		Highlight:      cfg.HighlightEnabled(),
		HighlightStyle: cfg.HighlightStyle,
	}
}

type TUI struct {
	services  *service.Services
	lifecycle *window.Lifecycle
	opts      Options
	logger    *logger.Logger
}

func New(services *service.Services, lifecycle *window.Lifecycle, opts Options, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		lifecycle: lifecycle,
		opts:      opts,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled. Persisting the
// window state on exit is left to the caller.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.lifecycle, t.opts, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
