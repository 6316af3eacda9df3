package tui

import "github.com/charmbracelet/bubbles/textarea"

const (
	defaultInputWidth  = 72
	defaultInputHeight = 6
)

func newInput(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(defaultInputWidth)
	ta.SetHeight(defaultInputHeight)
	return ta
}
