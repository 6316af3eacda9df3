// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transform

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-dev-utils/internal/jsonvalue"
	"github.com/MKhiriev/go-dev-utils/models"
)

const jwtSegments = 3

var base64URLToStd = strings.NewReplacer("-", "+", "_", "/")

// DecodeJWT splits a token into header, payload and signature. Header and
// payload are Base64URL-decoded and must hold JSON objects; the signature is
// kept verbatim and never verified.
//
// Blank input yields the cleared document (see [models.JWTDocument.Empty]).
func DecodeJWT(raw string) models.JWTDocument {
	token := strings.TrimSpace(raw)
	if token == "" {
		return models.JWTDocument{Header: jsonvalue.NewObject(), Payload: jsonvalue.NewObject()}
	}

	parts := strings.Split(token, ".")
	if len(parts) != jwtSegments {
		err := fmt.Errorf("%w: expected %d dot-separated parts, got %d", ErrInvalidFormat, jwtSegments, len(parts))
		return failedDocument(parts, err, msgInvalidJWTFormat)
	}

	header, err := decodeJWTSegment(parts[0], "header")
	if err != nil {
		return failedDocument(parts, err, segmentMessage(err))
	}
	payload, err := decodeJWTSegment(parts[1], "payload")
	if err != nil {
		return failedDocument(parts, err, segmentMessage(err))
	}

	return models.JWTDocument{
		Header:    header,
		Payload:   payload,
		Signature: parts[2],
		Valid:     true,
	}
}

// decodeJWTSegment maps the Base64URL alphabet onto the standard one, pads to
// a multiple of four and strictly decodes, then parses a JSON object.
func decodeJWTSegment(segment, name string) (*jsonvalue.Object, error) {
	std := base64URLToStd.Replace(segment)
	if rem := len(std) % 4; rem > 0 {
		std += strings.Repeat("=", 4-rem)
	}

	data, err := decodeStrict(std)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidBase64, name, err)
	}

	v, err := jsonvalue.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidJSON, name, err)
	}
	obj, ok := v.AsObject()
	if !ok {
		return nil, fmt.Errorf("%w: %s: top-level value is %s, not object", ErrInvalidJSON, name, v.Kind())
	}

	return obj, nil
}

func segmentMessage(err error) string {
	if errors.Is(err, ErrInvalidBase64) {
		return msgInvalidJWTBase64
	}
	return msgInvalidJWTJSON
}

func failedDocument(parts []string, err error, message string) models.JWTDocument {
	doc := models.JWTDocument{
		Header:       jsonvalue.NewObject(),
		Payload:      jsonvalue.NewObject(),
		ErrorMessage: message,
		Err:          err,
	}
	if len(parts) > 2 {
		doc.Signature = parts[2]
	}
	return doc
}

// JWTMetadata derives display metadata from a valid document. now is the
// reference time for the expiry flag.
func JWTMetadata(doc models.JWTDocument, now time.Time) models.JWTMetadata {
	var md models.JWTMetadata
	if !doc.Valid {
		return md
	}

	md.Algorithm = stringClaim(doc.Header, "alg")
	md.Type = stringClaim(doc.Header, "typ")

	claims := jwt.MapClaims(doc.Payload.Map())
	md.Issuer, _ = claims.GetIssuer()
	md.Subject, _ = claims.GetSubject()
	if aud, err := claims.GetAudience(); err == nil && len(aud) > 0 {
		md.Audience = []string(aud)
	}

	md.IssuedAt = claimTime(claims.GetIssuedAt())
	md.NotBefore = claimTime(claims.GetNotBefore())
	md.ExpiresAt = claimTime(claims.GetExpirationTime())
	if md.ExpiresAt != nil {
		md.Expired = md.ExpiresAt.Before(now)
	}

	return md
}

// FormatJWTSection renders a header or payload as sorted 2-space JSON, the
// form shown in the JWT tab and copied to the clipboard.
func FormatJWTSection(obj *jsonvalue.Object) string {
	out, err := jsonvalue.Marshal(jsonvalue.ObjectValue(obj), jsonvalue.EncodeOptions{Indent: IndentNative, SortKeys: true})
	if err != nil {
		return "Error formatting JSON: " + err.Error()
	}
	return out
}

// RenderJWT renders a decoded document as plain text with header, payload
// and signature sections.
func RenderJWT(doc models.JWTDocument) string {
	var b strings.Builder
	b.WriteString("Header:\n")
	b.WriteString(FormatJWTSection(doc.Header))
	b.WriteString("\n\nPayload:\n")
	b.WriteString(FormatJWTSection(doc.Payload))
	b.WriteString("\n\nSignature:\n")
	b.WriteString(doc.Signature)
	return b.String()
}

func stringClaim(obj *jsonvalue.Object, key string) string {
	v, ok := obj.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.AsString()
	return s
}

func claimTime(date *jwt.NumericDate, err error) *time.Time {
	if err != nil || date == nil {
		return nil
	}
	t := date.Time
	return &t
}
