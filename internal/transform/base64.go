// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transform

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-dev-utils/models"
)

// strictStd is standard padded Base64 that also rejects non-zero padding
// bits.
var strictStd = base64.StdEncoding.Strict()

// EncodeBase64 encodes the UTF-8 bytes of text as standard padded Base64.
func EncodeBase64(text string) models.TransformResult {
	if text == "" {
		return models.Success("")
	}
	return models.Success(base64.StdEncoding.EncodeToString([]byte(text)))
}

// DecodeBase64 strictly decodes standard padded Base64 into a UTF-8 string.
// Failures wrap [ErrInvalidEncoding].
func DecodeBase64(text string) models.TransformResult {
	if text == "" {
		return models.Success("")
	}

	decoded, err := decodeStrict(text)
	if err != nil {
		return models.Failure(fmt.Errorf("%w: %w", ErrInvalidEncoding, err), msgInvalidBase64Input)
	}
	if !utf8.Valid(decoded) {
		return models.Failure(fmt.Errorf("%w: decoded bytes are not valid UTF-8", ErrInvalidEncoding), msgInvalidBase64Input)
	}

	return models.Success(string(decoded))
}

// decodeStrict decodes s with the strict standard alphabet. The Go decoder
// silently drops CR and LF, which are outside the alphabet, so they are
// rejected here first.
func decodeStrict(s string) ([]byte, error) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}
	return strictStd.DecodeString(s)
}
