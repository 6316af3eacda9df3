// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It restores the persisted window state, runs the terminal UI until the
// user quits and persists the window state again on the way out.
package client
