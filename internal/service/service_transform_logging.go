package service

import (
	"time"

	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/models"
)

type transformLoggingWrapper struct {
	logger *logger.Logger
}

// NewTransformLoggingWrapper returns a wrapper that logs mode, outcome and
// duration of every request. Input and output text are never logged.
func NewTransformLoggingWrapper(logger *logger.Logger) TransformServiceWrapper {
	return &transformLoggingWrapper{logger: logger}
}

func (w *transformLoggingWrapper) Wrap(next TransformService) TransformService {
	return &loggingTransformService{next: next, logger: w.logger}
}

type loggingTransformService struct {
	next   TransformService
	logger *logger.Logger
}

func (s *loggingTransformService) Run(req models.TransformRequest) models.TransformResult {
	start := time.Now()
	res := s.next.Run(req)

	event := s.logger.Debug()
	if res.Err != nil {
		event = s.logger.Warn().Err(res.Err)
	}
	event.Str("func", "*loggingTransformService.Run").
		Str("mode", req.Mode.String()).
		Int("input_len", len(req.RawInput)).
		Bool("succeeded", res.Succeeded).
		Dur("took", time.Since(start)).
		Msg("transform finished")

	return res
}
