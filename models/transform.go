// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mode selects the transform a [TransformRequest] runs.
type Mode int

const (
	Encode Mode = iota
	Decode
	Format
	Minify
	Validate
	ParseJWT
)

// String returns the lower-case name used by the CLI and logs.
func (m Mode) String() string {
	switch m {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	case Format:
		return "format"
	case Minify:
		return "minify"
	case Validate:
		return "validate"
	case ParseJWT:
		return "jwt"
	default:
		return "unknown"
	}
}

// TransformOptions carries per-call tuning for a transform.
type TransformOptions struct {
	// IndentWidth is the number of spaces per nesting level for Format.
	// Zero or negative selects the default width of 2.
	IndentWidth int
	// Lenient enables JSONC input (comments and trailing commas) for the JSON
	// transforms.
	Lenient bool
}

// TransformRequest is one invocation of a transform. A new request is built
// for every input change.
type TransformRequest struct {
	RawInput string
	Mode     Mode
	Options  TransformOptions
}

// TransformResult is the outcome of a transform.
//
// On success Output holds the transformed text and ErrorMessage is empty. On
// failure Output is empty, ErrorMessage holds a short user-facing message and
// Err the typed error it came from. Empty input produces the neutral state:
// empty Output and empty ErrorMessage.
type TransformResult struct {
	Output       string
	Succeeded    bool
	ErrorMessage string
	Err          error
}

// Neutral reports whether r carries neither output nor an error, which is
// what every transform returns for empty input.
func (r TransformResult) Neutral() bool {
	return r.Output == "" && r.ErrorMessage == ""
}

// Success builds a successful result.
func Success(output string) TransformResult {
	return TransformResult{Output: output, Succeeded: true}
}

// Failure builds a failed result. message is what the user sees; err is kept
// for errors.Is matching. An empty message falls back to err.Error().
func Failure(err error, message string) TransformResult {
	if message == "" && err != nil {
		message = err.Error()
	}
	return TransformResult{ErrorMessage: message, Err: err}
}
