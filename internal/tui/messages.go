package tui

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	label string
	err   error
}

// clearStatusMsg clears the status line if no newer status replaced it.
type clearStatusMsg struct {
	seq int
}
