package service

import (
	"time"

	"github.com/MKhiriev/go-dev-utils/internal/transform"
	"github.com/MKhiriev/go-dev-utils/models"
)

type jwtService struct {
	now func() time.Time
}

func NewJWTService() JWTService {
	return &jwtService{now: time.Now}
}

func (s *jwtService) Decode(token string) models.JWTDocument {
	return transform.DecodeJWT(token)
}

// Metadata evaluates expiry against the current time.
func (s *jwtService) Metadata(doc models.JWTDocument) models.JWTMetadata {
	return transform.JWTMetadata(doc, s.now())
}
