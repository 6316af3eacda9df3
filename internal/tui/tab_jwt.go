package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/MKhiriev/go-dev-utils/internal/service"
	"github.com/MKhiriev/go-dev-utils/internal/transform"
	"github.com/MKhiriev/go-dev-utils/models"
)

type jwtTab struct {
	input textarea.Model
	doc   models.JWTDocument
	meta  models.JWTMetadata
}

func newJWTTab() jwtTab {
	return jwtTab{input: newInput("Paste a JWT")}
}

func (t *jwtTab) run(svc service.JWTService) {
	t.doc = svc.Decode(t.input.Value())
	t.meta = svc.Metadata(t.doc)
}

func (t *jwtTab) clear() {
	t.input.Reset()
	t.doc = models.JWTDocument{}
	t.meta = models.JWTMetadata{}
}

func (t jwtTab) output() string {
	if !t.doc.Valid {
		return ""
	}
	return transform.RenderJWT(t.doc)
}

func (t jwtTab) sectionText(s jwtSection) string {
	if !t.doc.Valid {
		return ""
	}
	switch s {
	case sectionHeader:
		return transform.FormatJWTSection(t.doc.Header)
	case sectionPayload:
		return transform.FormatJWTSection(t.doc.Payload)
	default:
		return t.doc.Signature
	}
}

func (t jwtTab) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("JWT Decoder"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("JWT Token:"))
	b.WriteString("\n")
	b.WriteString(t.input.View())

	if t.doc.ErrorMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("⚠ " + t.doc.ErrorMessage))
	}
	if !t.doc.Valid {
		return b.String()
	}

	b.WriteString("\n\n")
	b.WriteString(section("Header (alt+h)", t.sectionText(sectionHeader)))
	b.WriteString("\n\n")
	b.WriteString(section("Payload (alt+p)", t.sectionText(sectionPayload)))
	b.WriteString("\n\n")
	b.WriteString(section("Signature (alt+s)", t.doc.Signature))
	if md := t.metadataView(); md != "" {
		b.WriteString("\n\n")
		b.WriteString(section("Token Info", md))
	}
	return b.String()
}

func (t jwtTab) metadataView() string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	add("Algorithm", t.meta.Algorithm)
	add("Type", t.meta.Type)
	add("Issuer", t.meta.Issuer)
	add("Subject", t.meta.Subject)
	add("Audience", strings.Join(t.meta.Audience, ", "))
	add("Issued At", formatClaimTime(t.meta.IssuedAt))
	add("Not Before", formatClaimTime(t.meta.NotBefore))
	if t.meta.ExpiresAt != nil {
		add("Expires", formatClaimTime(t.meta.ExpiresAt)+" ("+t.meta.Status()+")")
	}

	return strings.Join(lines, "\n")
}

func formatClaimTime(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Local().Format(time.DateTime)
}
