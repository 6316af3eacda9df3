// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Window is the part of the window lifecycle the runtime drives directly.
// *window.Lifecycle implements it.
type Window interface {
	Load(ctx context.Context) error
	Show(ctx context.Context) error
	Quit(ctx context.Context) error
}

// UI is a blocking user interface. *tui.TUI implements it.
type UI interface {
	Run(ctx context.Context) error
}
