// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transform

import (
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/MKhiriev/go-dev-utils/internal/jsonvalue"
	"github.com/MKhiriev/go-dev-utils/models"
)

// Indent presets offered by the UI. IndentTab is the width a tab stop
// stands for.
const (
	IndentNative = 2
	IndentWide   = 4
	IndentTab    = 8
)

// IndentPresets lists the supported indent widths in UI order.
var IndentPresets = []int{IndentNative, IndentWide, IndentTab}

// FormatJSON pretty-prints text with object keys sorted and opts.IndentWidth
// spaces per level.
//
// Whitespace-only input gives the neutral result (not succeeded, no error).
func FormatJSON(text string, opts models.TransformOptions) models.TransformResult {
	v, res, ok := parseJSONInput(text, opts.Lenient)
	if !ok {
		return res
	}

	out, err := jsonvalue.Marshal(v, jsonvalue.EncodeOptions{Indent: IndentNative, SortKeys: true})
	if err != nil {
		return invalidJSON(err)
	}

	width := opts.IndentWidth
	if width <= 0 {
		width = IndentNative
	}
	if width != IndentNative {
		out = Reindent(out, width)
	}

	return models.Success(out)
}

// MinifyJSON serializes text with no insignificant whitespace. Keys stay in
// source order.
func MinifyJSON(text string, opts models.TransformOptions) models.TransformResult {
	v, res, ok := parseJSONInput(text, opts.Lenient)
	if !ok {
		return res
	}

	out, err := jsonvalue.Marshal(v, jsonvalue.EncodeOptions{})
	if err != nil {
		return invalidJSON(err)
	}
	return models.Success(out)
}

// ValidateJSON only parses text. Success yields [ValidJSONMessage] rather
// than the document.
func ValidateJSON(text string, opts models.TransformOptions) models.TransformResult {
	if _, res, ok := parseJSONInput(text, opts.Lenient); !ok {
		return res
	}
	return models.Success(ValidJSONMessage)
}

// Reindent re-emits already pretty-printed text with width spaces per level.
// The nesting depth of a line is its leading space count divided by the
// native width of 2. Blank lines stay blank.
func Reindent(text string, width int) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))

	for i, line := range lines {
		trimmed := strings.Trim(line, " \t")
		if trimmed == "" {
			continue
		}
		leading := len(line) - len(strings.TrimLeft(line, " "))
		depth := leading / IndentNative
		out[i] = strings.Repeat(" ", depth*width) + trimmed
	}

	return strings.Join(out, "\n")
}

// parseJSONInput trims and parses text. ok is false when the caller should
// return res as is: either the neutral result for blank input or a parse
// failure.
func parseJSONInput(text string, lenient bool) (jsonvalue.Value, models.TransformResult, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return jsonvalue.Value{}, models.TransformResult{}, false
	}
	if lenient {
		trimmed = string(jsonc.ToJSON([]byte(trimmed)))
	}

	v, err := jsonvalue.Parse(trimmed)
	if err != nil {
		return jsonvalue.Value{}, invalidJSON(err), false
	}
	return v, models.TransformResult{}, true
}

func invalidJSON(cause error) models.TransformResult {
	return models.Failure(fmt.Errorf("%w: %w", ErrInvalidJSON, cause), msgInvalidJSONPrefix+cause.Error())
}
