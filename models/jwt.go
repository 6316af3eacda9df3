// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/MKhiriev/go-dev-utils/internal/jsonvalue"
)

// JWTDocument is a decoded (never verified) JSON Web Token.
//
// A document is built fresh for every parse. When Valid is false Header and
// Payload are empty objects, Signature is the third segment if one exists and
// ErrorMessage explains the failure.
type JWTDocument struct {
	Header       *jsonvalue.Object
	Payload      *jsonvalue.Object
	Signature    string
	Valid        bool
	ErrorMessage string
	Err          error
}

// Empty reports whether the document is the cleared state produced by blank
// input.
func (d JWTDocument) Empty() bool {
	return !d.Valid && d.ErrorMessage == "" && d.Signature == ""
}

// JWTMetadata is the human-readable summary derived from a valid token.
// Zero values mean the claim was absent.
type JWTMetadata struct {
	Algorithm string
	Type      string
	Issuer    string
	Subject   string
	Audience  []string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
	NotBefore *time.Time
	// Expired is meaningful only when ExpiresAt is set. It is informational
	// and never used for access decisions.
	Expired bool
}

// Status returns "Expired" or "Valid" for tokens carrying an exp claim and an
// empty string otherwise.
func (m JWTMetadata) Status() string {
	if m.ExpiresAt == nil {
		return ""
	}
	if m.Expired {
		return "Expired"
	}
	return "Valid"
}
