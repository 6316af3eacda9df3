package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/MKhiriev/go-dev-utils/internal/service"
	"github.com/MKhiriev/go-dev-utils/models"
)

type base64Tab struct {
	input  textarea.Model
	mode   models.Mode
	result models.TransformResult
}

func newBase64Tab() base64Tab {
	return base64Tab{
		input: newInput("Type or paste text"),
		mode:  models.Encode,
	}
}

func (t *base64Tab) run(svc service.TransformService) {
	t.result = svc.Run(models.TransformRequest{RawInput: t.input.Value(), Mode: t.mode})
}

// swap flips the direction and feeds the previous output back as input.
func (t *base64Tab) swap(svc service.TransformService) {
	if t.mode == models.Encode {
		t.mode = models.Decode
	} else {
		t.mode = models.Encode
	}
	t.input.SetValue(t.result.Output)
	t.run(svc)
}

func (t *base64Tab) clear() {
	t.input.Reset()
	t.result = models.TransformResult{}
}

func (t base64Tab) output() string {
	return t.result.Output
}

func (t base64Tab) view() string {
	inputLabel, outputLabel, swapLabel := "Text to Encode", "Base64 Output", "Switch to Decode"
	if t.mode == models.Decode {
		inputLabel, outputLabel, swapLabel = "Base64 to Decode", "Decoded Text", "Switch to Encode"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Base64 Encoder/Decoder"))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("ctrl+s: " + swapLabel))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(inputLabel + ":"))
	b.WriteString("\n")
	b.WriteString(t.input.View())
	b.WriteString("\n\n")
	b.WriteString(section(outputLabel, t.result.Output))
	if t.result.ErrorMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("⚠ " + t.result.ErrorMessage))
	}
	return b.String()
}
