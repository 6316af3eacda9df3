package service

import (
	"context"

	"github.com/MKhiriev/go-dev-utils/models"
)

// TransformService runs one transform request. It is total: every call
// returns a result and no panic escapes.
type TransformService interface {
	Run(req models.TransformRequest) models.TransformResult
}

// JWTService decodes tokens for the JWT tab, which shows header, payload
// and signature separately.
type JWTService interface {
	Decode(token string) models.JWTDocument
	Metadata(doc models.JWTDocument) models.JWTMetadata
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// TransformServiceWrapper defines middleware composition for
// TransformService. Implementations wrap an existing TransformService to add
// behavior such as logging.
type TransformServiceWrapper interface {
	Wrap(TransformService) TransformService // returns a decorated TransformService applying additional behavior
}
