// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tab identifies one of the tool views.
type Tab int

// Tabs in display order. The numeric value is what gets persisted.
const (
	TabBase64 Tab = iota
	TabJWT
	TabJSON
)

// TabCount is the number of tool tabs.
const TabCount = 3

// Title returns the tab label.
func (t Tab) Title() string {
	switch t {
	case TabBase64:
		return "Base64"
	case TabJWT:
		return "JWT"
	case TabJSON:
		return "JSON"
	default:
		return "?"
	}
}

// Valid reports whether t names an existing tab.
func (t Tab) Valid() bool {
	return t >= 0 && t < TabCount
}

// Frame is the window geometry.
type Frame struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// DefaultFrame is used when no usable frame was persisted.
var DefaultFrame = Frame{X: 100, Y: 100, Width: 600, Height: 500}

// Usable reports whether f has a positive size.
func (f Frame) Usable() bool {
	return f.Width > 0 && f.Height > 0
}

// WindowState is the process-wide window geometry and tab selection that
// survives restarts.
type WindowState struct {
	Frame       Frame
	SelectedTab Tab
}

// DefaultWindowState is the state of a first launch.
func DefaultWindowState() WindowState {
	return WindowState{Frame: DefaultFrame, SelectedTab: TabBase64}
}
