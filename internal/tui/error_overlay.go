package tui

// errorOverlayModel shows a failure that is not tied to the current input,
// such as a settings write error. enter or esc dismisses it.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nenter / esc: close"
	return overlayBoxStyle.Render(content)
}
