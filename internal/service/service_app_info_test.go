package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/models"
)

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_ReturnsBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.0", "", "abc123")

	svc, err := NewAppInfoService(info, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())
	assert.Equal(t, "1.2.0", got.Version)
	assert.Equal(t, "N/A", got.Date)
	assert.Equal(t, "abc123", got.Commit)
}
