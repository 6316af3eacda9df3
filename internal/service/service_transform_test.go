// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dev-utils/internal/config"
	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/internal/transform"
	"github.com/MKhiriev/go-dev-utils/models"
)

func TestTransformService_Run_RoutesOnMode(t *testing.T) {
	svc := NewTransformService(models.TransformOptions{IndentWidth: 2})

	tests := []struct {
		name   string
		mode   models.Mode
		input  string
		output string
	}{
		{name: "encode", mode: models.Encode, input: "hello", output: "aGVsbG8="},
		{name: "decode", mode: models.Decode, input: "aGVsbG8=", output: "hello"},
		{name: "format", mode: models.Format, input: `{"b":1,"a":2}`, output: "{\n  \"a\": 2,\n  \"b\": 1\n}"},
		{name: "minify", mode: models.Minify, input: "{ \"b\" : 1 ,\n \"a\" : 2 }", output: `{"b":1,"a":2}`},
		{name: "validate", mode: models.Validate, input: `[1,2]`, output: transform.ValidJSONMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.Run(models.TransformRequest{RawInput: tt.input, Mode: tt.mode})

			require.True(t, res.Succeeded, res.ErrorMessage)
			assert.Equal(t, tt.output, res.Output)
		})
	}
}

func TestTransformService_Run_ParseJWT(t *testing.T) {
	svc := NewTransformService(models.TransformOptions{})
	enc := base64.RawURLEncoding.EncodeToString
	token := enc([]byte(`{"alg":"HS256"}`)) + "." + enc([]byte(`{"sub":"1"}`)) + ".sig"

	res := svc.Run(models.TransformRequest{RawInput: token, Mode: models.ParseJWT})

	require.True(t, res.Succeeded)
	assert.True(t, strings.HasPrefix(res.Output, "Header:\n{\n  \"alg\": \"HS256\"\n}"))
	assert.True(t, strings.HasSuffix(res.Output, "Signature:\nsig"))
}

func TestTransformService_Run_ParseJWT_FailureAndNeutral(t *testing.T) {
	svc := NewTransformService(models.TransformOptions{})

	bad := svc.Run(models.TransformRequest{RawInput: "a.b", Mode: models.ParseJWT})
	assert.False(t, bad.Succeeded)
	assert.ErrorIs(t, bad.Err, transform.ErrInvalidFormat)
	assert.Equal(t, "Invalid JWT format. Expected 3 parts separated by dots.", bad.ErrorMessage)

	blank := svc.Run(models.TransformRequest{RawInput: "  ", Mode: models.ParseJWT})
	assert.True(t, blank.Neutral())
}

func TestTransformService_Run_UnknownMode(t *testing.T) {
	svc := NewTransformService(models.TransformOptions{})

	res := svc.Run(models.TransformRequest{RawInput: "x", Mode: models.Mode(42)})

	assert.False(t, res.Succeeded)
	assert.ErrorIs(t, res.Err, ErrUnknownMode)
	assert.Equal(t, msgUnknownMode, res.ErrorMessage)
}

func TestTransformService_Run_AppliesDefaults(t *testing.T) {
	svc := NewTransformService(models.TransformOptions{IndentWidth: 4, Lenient: true})

	res := svc.Run(models.TransformRequest{RawInput: `{"a":[1,],}`, Mode: models.Format})
	require.True(t, res.Succeeded, res.ErrorMessage)
	assert.Equal(t, "{\n    \"a\": [\n        1\n    ]\n}", res.Output)

	res = svc.Run(models.TransformRequest{
		RawInput: `{"a":1}`,
		Mode:     models.Format,
		Options:  models.TransformOptions{IndentWidth: 8},
	})
	assert.Equal(t, "{\n        \"a\": 1\n}", res.Output)
}

func TestTransformService_Run_ReportsTypedErrors(t *testing.T) {
	svc := NewTransformService(models.TransformOptions{})

	res := svc.Run(models.TransformRequest{RawInput: "@@@", Mode: models.Decode})
	assert.ErrorIs(t, res.Err, transform.ErrInvalidEncoding)
	assert.Equal(t, "Invalid Base64 input", res.ErrorMessage)

	res = svc.Run(models.TransformRequest{RawInput: "{", Mode: models.Validate})
	assert.ErrorIs(t, res.Err, transform.ErrInvalidJSON)
	assert.True(t, strings.HasPrefix(res.ErrorMessage, "Invalid JSON: "))
}

func TestLoggingWrapper_LogsWithoutInput(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger("test")
	log.Logger = log.Output(&buf)

	svc := NewTransformLoggingWrapper(log).Wrap(NewTransformService(models.TransformOptions{}))
	res := svc.Run(models.TransformRequest{RawInput: "secret-value", Mode: models.Encode})

	require.True(t, res.Succeeded)
	assert.Contains(t, buf.String(), `"mode":"encode"`)
	assert.Contains(t, buf.String(), `"input_len":12`)
	assert.NotContains(t, buf.String(), "secret-value")
	assert.NotContains(t, buf.String(), res.Output)
}

func TestLoggingWrapper_PassesResultThrough(t *testing.T) {
	inner := NewTransformService(models.TransformOptions{})
	svc := NewTransformLoggingWrapper(logger.Nop()).Wrap(inner)

	req := models.TransformRequest{RawInput: "{", Mode: models.Minify}
	assert.Equal(t, inner.Run(req), svc.Run(req))
}

func TestNewServices(t *testing.T) {
	cfg := &config.StructuredConfig{
		UI:   config.UI{IndentWidth: 4},
		JSON: config.JSON{Lenient: true},
	}

	svcs := NewServices(cfg, models.NewAppBuildInfo("v1", "", ""), logger.Nop())

	require.NotNil(t, svcs.TransformService)
	require.NotNil(t, svcs.JWTService)
	require.NotNil(t, svcs.AppInfoService)

	res := svcs.TransformService.Run(models.TransformRequest{RawInput: `{"a":1,}`, Mode: models.Format})
	assert.Equal(t, "{\n    \"a\": 1\n}", res.Output)
}

func TestJWTService_Metadata_UsesClock(t *testing.T) {
	enc := base64.RawURLEncoding.EncodeToString
	token := enc([]byte(`{"alg":"HS256"}`)) + "." + enc([]byte(`{"exp":1000}`)) + ".s"

	svc := &jwtService{now: func() time.Time { return time.Unix(999, 0) }}
	doc := svc.Decode(token)
	require.True(t, doc.Valid)
	assert.Equal(t, "Valid", svc.Metadata(doc).Status())

	svc.now = func() time.Time { return time.Unix(1001, 0) }
	assert.Equal(t, "Expired", svc.Metadata(doc).Status())
}
