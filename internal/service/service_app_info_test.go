package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-dev-utils/models"
)

// ─────────────────────────────────────────────
// GetAppInfo
// ─────────────────────────────────────────────

func TestGetAppInfo_ReturnsBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("v1.0.0", "2026-10-14", "deadbee")
	svc := NewAppInfoService(info)

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, "v1.0.0", got.Version())
	assert.Equal(t, "deadbee", got.Commit())
}

func TestGetAppInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	// GetAppInfo does not use ctx, so it must still return the info
	assert.Equal(t, "1.0.0", svc.GetAppInfo(ctx).Version())
	assert.Equal(t, models.NotAvailable, svc.GetAppInfo(ctx).Date())
}
