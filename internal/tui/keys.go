package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	toggle        key.Binding
	closeWindow   key.Binding
	quit          key.Binding
	tabBase64     key.Binding
	tabJWT        key.Binding
	tabJSON       key.Binding
	nextTab       key.Binding
	prevTab       key.Binding
	copy          key.Binding
	copyHeader    key.Binding
	copyPayload   key.Binding
	copySignature key.Binding
	swap          key.Binding
	clear         key.Binding
	indent        key.Binding
	jsonMode      key.Binding
	about         key.Binding
}

var keys = keyMap{
	toggle:        key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "show/hide")),
	closeWindow:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	tabBase64:     key.NewBinding(key.WithKeys("alt+1", "f1"), key.WithHelp("alt+1", "base64")),
	tabJWT:        key.NewBinding(key.WithKeys("alt+2", "f2"), key.WithHelp("alt+2", "jwt")),
	tabJSON:       key.NewBinding(key.WithKeys("alt+3", "f3"), key.WithHelp("alt+3", "json")),
	nextTab:       key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "next tab")),
	prevTab:       key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←", "prev tab")),
	copy:          key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	copyHeader:    key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "copy header")),
	copyPayload:   key.NewBinding(key.WithKeys("alt+p"), key.WithHelp("alt+p", "copy payload")),
	copySignature: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "copy signature")),
	swap:          key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "swap")),
	clear:         key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	indent:        key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "indent")),
	jsonMode:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "mode")),
	about:         key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "about")),
}

// hotKeys renders the help line for the given bindings.
func hotKeys(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " │ "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
