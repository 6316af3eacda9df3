package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

func copyCmd(label, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{label: label, err: writeClipboard(text)}
	}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
