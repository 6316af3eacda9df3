package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

const outputPlaceholder = "Output will appear here..."

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  " + globalHotKeys))

	return b.String()
}

var globalHotKeys = hotKeys(keys.toggle, keys.closeWindow, keys.quit, keys.about)

// section renders a labelled block, substituting the placeholder for empty
// content.
func section(label, content string) string {
	if content == "" {
		content = labelStyle.Render(outputPlaceholder)
	}
	return labelStyle.Render(label+":") + "\n" + content
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
