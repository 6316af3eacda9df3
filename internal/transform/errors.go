// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transform

import "errors"

// Error taxonomy of the transforms. Results wrap these, so callers match with
// errors.Is on [models.TransformResult.Err] or [models.JWTDocument.Err].
var (
	// ErrInvalidEncoding marks a Base64 decode failure or decoded bytes that
	// are not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidJSON marks a JSON parse failure, or a JWT segment whose JSON
	// is not an object.
	ErrInvalidJSON = errors.New("invalid json")

	// ErrInvalidFormat marks a structural precondition failure, such as a
	// token that does not have exactly three segments.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidBase64 marks a JWT segment that is not valid Base64URL.
	ErrInvalidBase64 = errors.New("invalid base64")
)

// User-facing messages.
const (
	msgInvalidBase64Input = "Invalid Base64 input"
	msgInvalidJSONPrefix  = "Invalid JSON: "
	msgInvalidJWTFormat   = "Invalid JWT format. Expected 3 parts separated by dots."
	msgInvalidJWTBase64   = "Invalid Base64 encoding in JWT part"
	msgInvalidJWTJSON     = "Invalid JSON in JWT part"

	// ValidJSONMessage is the output of a successful validation.
	ValidJSONMessage = "✅ Valid JSON"
)
