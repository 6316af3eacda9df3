package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/MKhiriev/go-dev-utils/internal/service"
	"github.com/MKhiriev/go-dev-utils/internal/transform"
	"github.com/MKhiriev/go-dev-utils/models"
)

var jsonModes = []models.Mode{models.Format, models.Minify, models.Validate}

type jsonTab struct {
	input     textarea.Model
	mode      models.Mode
	indent    int
	result    models.TransformResult
	rendered  string
	highlight highlighter
}

func newJSONTab(indent int, h highlighter) jsonTab {
	if indent <= 0 {
		indent = transform.IndentNative
	}
	return jsonTab{
		input:     newInput("Paste JSON"),
		mode:      models.Format,
		indent:    indent,
		highlight: h,
	}
}

func (t *jsonTab) run(svc service.TransformService) {
	t.result = svc.Run(models.TransformRequest{
		RawInput: t.input.Value(),
		Mode:     t.mode,
		Options:  models.TransformOptions{IndentWidth: t.indent},
	})

	t.rendered = t.result.Output
	if t.mode == models.Format && t.result.Succeeded {
		t.rendered = t.highlight.render(t.result.Output)
	}
}

// cycleIndent steps through the indent presets. A width outside the presets
// restarts at the first one.
func (t *jsonTab) cycleIndent(svc service.TransformService) {
	next := transform.IndentPresets[0]
	for i, w := range transform.IndentPresets {
		if w == t.indent && i+1 < len(transform.IndentPresets) {
			next = transform.IndentPresets[i+1]
		}
	}
	t.indent = next
	t.run(svc)
}

func (t *jsonTab) cycleMode(svc service.TransformService) {
	next := jsonModes[0]
	for i, m := range jsonModes {
		if m == t.mode && i+1 < len(jsonModes) {
			next = jsonModes[i+1]
		}
	}
	t.mode = next
	t.run(svc)
}

// swap moves a successful format or minify output into the input.
func (t *jsonTab) swap(svc service.TransformService) {
	if !t.result.Succeeded || t.mode == models.Validate {
		return
	}
	t.input.SetValue(t.result.Output)
	t.run(svc)
}

func (t *jsonTab) clear() {
	t.input.Reset()
	t.result = models.TransformResult{}
	t.rendered = ""
}

func (t jsonTab) output() string {
	return t.result.Output
}

func indentLabel(width int) string {
	if width == transform.IndentTab {
		return "⇥"
	}
	return fmt.Sprint(width)
}

func (t jsonTab) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("JSON Formatter"))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(fmt.Sprintf("mode: %s │ indent: %s", t.mode, indentLabel(t.indent))))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("JSON Input:"))
	b.WriteString("\n")
	b.WriteString(t.input.View())
	b.WriteString("\n\n")
	b.WriteString(section("Output", t.rendered))
	if t.result.ErrorMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("⚠ " + t.result.ErrorMessage))
	}
	return b.String()
}
