// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package window holds the lifecycle of the single tool window: its
// visibility, geometry and selected tab, and when they are persisted.
//
// The window is created once per process and never destroyed. Closing it
// only hides it. Geometry and tab are written to the [StateRepository] when
// the window is hidden and when the process quits.
package window

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/models"
)

//go:generate mockgen -source=lifecycle.go -destination=../mock/window_mock.go -package=mock

// StateRepository loads and saves the persisted window state.
type StateRepository interface {
	Load(ctx context.Context) (models.WindowState, error)
	Save(ctx context.Context, state models.WindowState) error
}

// State is the visibility of the window.
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Lifecycle is the window state machine. It is not safe for concurrent use;
// the UI event loop owns it.
type Lifecycle struct {
	repo   StateRepository
	logger *logger.Logger

	state State
	// frame is the live geometry, persisted is what the store last holds.
	frame     models.Frame
	persisted models.Frame
	tab       models.Tab
	loaded    bool
}

// NewLifecycle returns a hidden window with the default frame and first tab.
// Call [Lifecycle.Load] to restore the persisted state.
func NewLifecycle(repo StateRepository, logger *logger.Logger) *Lifecycle {
	return &Lifecycle{
		repo:      repo,
		logger:    logger,
		state:     Hidden,
		frame:     models.DefaultFrame,
		persisted: models.DefaultFrame,
		tab:       models.TabBase64,
	}
}

// Load reads the persisted state once. Later calls are no-ops. A frame
// without a positive size falls back to [models.DefaultFrame] and a tab
// outside the known range falls back to the first tab. On a repository
// error the defaults stay in place and the error is returned.
func (l *Lifecycle) Load(ctx context.Context) error {
	if l.loaded {
		return nil
	}
	l.loaded = true

	saved, err := l.repo.Load(ctx)
	if err != nil {
		l.logger.Err(err).Str("func", "*Lifecycle.Load").Msg("error loading window state, using defaults")
		return fmt.Errorf("error loading window state: %w", err)
	}

	if saved.Frame.Usable() {
		l.persisted = saved.Frame
		l.frame = saved.Frame
	}
	if saved.SelectedTab.Valid() {
		l.tab = saved.SelectedTab
	} else {
		l.logger.Warn().Str("func", "*Lifecycle.Load").Int("tab", int(saved.SelectedTab)).Msg("persisted tab out of range, resetting")
		l.tab = models.TabBase64
	}

	return nil
}

// Show makes a hidden window visible at the last persisted frame.
func (l *Lifecycle) Show(ctx context.Context) error {
	if l.state == Visible {
		return nil
	}

	err := l.Load(ctx)
	l.frame = l.persisted
	l.state = Visible
	return err
}

// Hide hides a visible window and persists its frame and tab.
func (l *Lifecycle) Hide(ctx context.Context) error {
	if l.state == Hidden {
		return nil
	}

	l.state = Hidden
	return l.persist(ctx)
}

// Toggle shows a hidden window and hides a visible one.
func (l *Lifecycle) Toggle(ctx context.Context) error {
	if l.state == Visible {
		return l.Hide(ctx)
	}
	return l.Show(ctx)
}

// Close hides the window. The window itself is kept for the next Show.
func (l *Lifecycle) Close(ctx context.Context) error {
	return l.Hide(ctx)
}

// Quit persists frame and tab regardless of visibility. It is called once
// when the process terminates.
func (l *Lifecycle) Quit(ctx context.Context) error {
	return l.persist(ctx)
}

// Resize records a user resize of a visible window. Non-positive sizes are
// ignored.
func (l *Lifecycle) Resize(width, height float64) {
	if l.state != Visible || width <= 0 || height <= 0 {
		return
	}
	l.frame.Width = width
	l.frame.Height = height
}

// Move records a user move of a visible window.
func (l *Lifecycle) Move(x, y float64) {
	if l.state != Visible {
		return
	}
	l.frame.X = x
	l.frame.Y = y
}

// SelectTab records the selected tab, clamped to the known range.
func (l *Lifecycle) SelectTab(tab models.Tab) {
	switch {
	case tab < 0:
		tab = 0
	case tab >= models.TabCount:
		tab = models.TabCount - 1
	}
	l.tab = tab
}

// State returns the current visibility.
func (l *Lifecycle) State() State { return l.state }

// Visible reports whether the window is shown.
func (l *Lifecycle) Visible() bool { return l.state == Visible }

// Frame returns the live frame.
func (l *Lifecycle) Frame() models.Frame { return l.frame }

// SelectedTab returns the selected tab.
func (l *Lifecycle) SelectedTab() models.Tab { return l.tab }

func (l *Lifecycle) persist(ctx context.Context) error {
	state := models.WindowState{Frame: l.frame, SelectedTab: l.tab}
	if err := l.repo.Save(ctx, state); err != nil {
		l.logger.Err(err).Str("func", "*Lifecycle.persist").Msg("error saving window state")
		return fmt.Errorf("error saving window state: %w", err)
	}

	l.persisted = l.frame
	l.logger.Debug().Str("func", "*Lifecycle.persist").
		Float64("x", l.frame.X).Float64("y", l.frame.Y).
		Float64("width", l.frame.Width).Float64("height", l.frame.Height).
		Int("tab", int(l.tab)).
		Msg("window state saved")
	return nil
}
