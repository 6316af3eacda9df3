package service

import "errors"

var (
	ErrUnknownMode = errors.New("unknown transform mode")

	ErrTransformPanicked = errors.New("transform panicked")
)
