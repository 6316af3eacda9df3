package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dev-utils/internal/logger"
)

type App struct {
	window       Window
	ui           UI
	showOnLaunch bool
	logger       *logger.Logger
}

func NewApp(window Window, ui UI, showOnLaunch bool, logger *logger.Logger) *App {
	return &App{
		window:       window,
		ui:           ui,
		showOnLaunch: showOnLaunch,
		logger:       logger,
	}
}

// Run restores the window state, runs the UI and persists the state when the
// UI returns. A failed restore is logged and the defaults are used. UI and
// persistence errors are joined; a UI stopped by ctx cancellation is not an
// error.
func (a *App) Run(ctx context.Context) error {
	if err := a.window.Load(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("starting with default window state")
	}

	if a.showOnLaunch {
		if err := a.window.Show(ctx); err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("error showing window on launch")
		}
	}

	a.logger.Info().Bool("visible", a.showOnLaunch).Msg("ui started")
	uiErr := a.ui.Run(ctx)
	if uiErr != nil && ctx.Err() == nil {
		uiErr = fmt.Errorf("ui run error: %w", uiErr)
	} else {
		uiErr = nil
	}

	// ctx may already be cancelled by a signal; the final save must still run.
	quitErr := a.window.Quit(context.WithoutCancel(ctx))
	if quitErr != nil {
		quitErr = fmt.Errorf("error persisting window state on quit: %w", quitErr)
	}

	a.logger.Info().Msg("ui stopped")
	return errors.Join(uiErr, quitErr)
}
