// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-dev-utils/models"
)

type intentKind int

const (
	intentNone intentKind = iota
	intentToggleWindow
	intentCloseWindow
	intentQuit
	intentSelectTab
	intentNextTab
	intentPrevTab
	intentCopyOutput
	intentCopySection
	intentSwapMode
	intentClear
	intentCycleIndent
	intentCycleJSONMode
	intentShowAbout
)

// jwtSection names a copyable part of a decoded token.
type jwtSection int

const (
	sectionHeader jwtSection = iota
	sectionPayload
	sectionSignature
)

func (s jwtSection) String() string {
	switch s {
	case sectionHeader:
		return "header"
	case sectionPayload:
		return "payload"
	default:
		return "signature"
	}
}

// intent is a user command decoded from a key press. tab is set for
// intentSelectTab and section for intentCopySection.
type intent struct {
	kind    intentKind
	tab     models.Tab
	section jwtSection
}

// intentFor is the single place where key presses turn into commands.
// Keys that are not shortcuts yield intentNone and go to the focused input.
func intentFor(msg tea.KeyMsg) intent {
	switch {
	case key.Matches(msg, keys.quit):
		return intent{kind: intentQuit}
	case key.Matches(msg, keys.toggle):
		return intent{kind: intentToggleWindow}
	case key.Matches(msg, keys.closeWindow):
		return intent{kind: intentCloseWindow}
	case key.Matches(msg, keys.tabBase64):
		return intent{kind: intentSelectTab, tab: models.TabBase64}
	case key.Matches(msg, keys.tabJWT):
		return intent{kind: intentSelectTab, tab: models.TabJWT}
	case key.Matches(msg, keys.tabJSON):
		return intent{kind: intentSelectTab, tab: models.TabJSON}
	case key.Matches(msg, keys.nextTab):
		return intent{kind: intentNextTab}
	case key.Matches(msg, keys.prevTab):
		return intent{kind: intentPrevTab}
	case key.Matches(msg, keys.copy):
		return intent{kind: intentCopyOutput}
	case key.Matches(msg, keys.copyHeader):
		return intent{kind: intentCopySection, section: sectionHeader}
	case key.Matches(msg, keys.copyPayload):
		return intent{kind: intentCopySection, section: sectionPayload}
	case key.Matches(msg, keys.copySignature):
		return intent{kind: intentCopySection, section: sectionSignature}
	case key.Matches(msg, keys.swap):
		return intent{kind: intentSwapMode}
	case key.Matches(msg, keys.clear):
		return intent{kind: intentClear}
	case key.Matches(msg, keys.indent):
		return intent{kind: intentCycleIndent}
	case key.Matches(msg, keys.jsonMode):
		return intent{kind: intentCycleJSONMode}
	case key.Matches(msg, keys.about):
		return intent{kind: intentShowAbout}
	default:
		return intent{kind: intentNone}
	}
}
