package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "2026-10-01", "abc1234")

	assert.Equal(t, "v1.2.0", info.Version())
	assert.Equal(t, "2026-10-01", info.Date())
	assert.Equal(t, "abc1234", info.Commit())
	assert.Equal(t, "devutils v1.2.0 (commit abc1234, built 2026-10-01)", info.String())
}

func TestAppBuildInfo_BlankValuesAreNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "  ", "")

	assert.Equal(t, NotAvailable, info.Version())
	assert.Equal(t, NotAvailable, info.Date())
	assert.Equal(t, NotAvailable, info.Commit())

	var zero AppBuildInfo
	assert.Equal(t, NotAvailable, zero.Version())
}

func TestTransformResult_Neutral(t *testing.T) {
	assert.True(t, TransformResult{}.Neutral())
	assert.False(t, Success("x").Neutral())
	assert.False(t, Failure(nil, "Invalid Base64 input").Neutral())
}

func TestFailure_FallsBackToErrorText(t *testing.T) {
	res := Failure(assert.AnError, "")

	assert.False(t, res.Succeeded)
	assert.Equal(t, assert.AnError.Error(), res.ErrorMessage)
	assert.ErrorIs(t, res.Err, assert.AnError)
}

func TestWindowDefaults(t *testing.T) {
	assert.Equal(t, Frame{X: 100, Y: 100, Width: 600, Height: 500}, DefaultFrame)
	assert.True(t, DefaultFrame.Usable())
	assert.False(t, Frame{Width: 10}.Usable())
	assert.Equal(t, WindowState{Frame: DefaultFrame, SelectedTab: TabBase64}, DefaultWindowState())
}

func TestTab(t *testing.T) {
	assert.Equal(t, "Base64", TabBase64.Title())
	assert.Equal(t, "JWT", TabJWT.Title())
	assert.Equal(t, "JSON", TabJSON.Title())
	assert.True(t, TabJSON.Valid())
	assert.False(t, Tab(3).Valid())
	assert.False(t, Tab(-1).Valid())
}

func TestJWTMetadata_Status(t *testing.T) {
	assert.Empty(t, JWTMetadata{}.Status())
}
