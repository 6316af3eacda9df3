package service

import (
	"github.com/MKhiriev/go-dev-utils/internal/config"
	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/models"
)

type Services struct {
	TransformService TransformService
	JWTService       JWTService
	AppInfoService   AppInfoService
}

func NewServices(cfg *config.StructuredConfig, info models.AppBuildInfo, logger *logger.Logger) *Services {
	defaults := models.TransformOptions{
		IndentWidth: cfg.UI.IndentWidth,
		Lenient:     cfg.JSON.Lenient,
	}

	return &Services{
		TransformService: NewTransformLoggingWrapper(logger).Wrap(NewTransformService(defaults)),
		JWTService:       NewJWTService(),
		AppInfoService:   NewAppInfoService(info),
	}
}
