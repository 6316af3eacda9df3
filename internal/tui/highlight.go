package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// highlighter colours formatted JSON for a 256-colour terminal.
type highlighter struct {
	enabled bool
	style   string
}

// render returns code unchanged when highlighting is off or fails.
func (h highlighter) render(code string) string {
	if !h.enabled || code == "" {
		return code
	}

	var b strings.Builder
	if err := quick.Highlight(&b, code, "json", "terminal256", h.style); err != nil {
		return code
	}
	return strings.TrimRight(b.String(), "\n")
}
