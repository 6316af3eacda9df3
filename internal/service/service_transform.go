// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-dev-utils/internal/transform"
	"github.com/MKhiriev/go-dev-utils/models"
)

const (
	msgUnknownMode     = "Unknown mode"
	msgInternalFailure = "Internal error"
)

type transformService struct {
	defaults models.TransformOptions
}

// NewTransformService returns a dispatcher that routes requests on their
// mode. defaults fill the options a request leaves at zero.
func NewTransformService(defaults models.TransformOptions) TransformService {
	return &transformService{defaults: defaults}
}

func (s *transformService) Run(req models.TransformRequest) (res models.TransformResult) {
	defer func() {
		if r := recover(); r != nil {
			res = models.Failure(fmt.Errorf("%w: %s: %v", ErrTransformPanicked, req.Mode, r), msgInternalFailure)
		}
	}()

	opts := s.options(req.Options)

	switch req.Mode {
	case models.Encode:
		return transform.EncodeBase64(req.RawInput)
	case models.Decode:
		return transform.DecodeBase64(req.RawInput)
	case models.Format:
		return transform.FormatJSON(req.RawInput, opts)
	case models.Minify:
		return transform.MinifyJSON(req.RawInput, opts)
	case models.Validate:
		return transform.ValidateJSON(req.RawInput, opts)
	case models.ParseJWT:
		return jwtResult(transform.DecodeJWT(req.RawInput))
	default:
		return models.Failure(fmt.Errorf("%w: %d", ErrUnknownMode, int(req.Mode)), msgUnknownMode)
	}
}

func (s *transformService) options(opts models.TransformOptions) models.TransformOptions {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = s.defaults.IndentWidth
	}
	opts.Lenient = opts.Lenient || s.defaults.Lenient
	return opts
}

func jwtResult(doc models.JWTDocument) models.TransformResult {
	switch {
	case doc.Empty():
		return models.TransformResult{}
	case !doc.Valid:
		return models.Failure(doc.Err, doc.ErrorMessage)
	default:
		return models.Success(transform.RenderJWT(doc))
	}
}
