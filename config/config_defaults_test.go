package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)

	require.NotNil(t, cfg.Realtime)
	assert.Equal(t, 5*time.Second, cfg.Realtime.SendTimeout)
	assert.Equal(t, 60*time.Second, cfg.Realtime.PongWait)
	assert.Equal(t, 30*time.Second, cfg.Realtime.PingInterval)
	assert.Equal(t, 1024, cfg.Realtime.ReadBufferSize)
	assert.EqualValues(t, 4096, cfg.Realtime.MaxMessageSize)

	require.NotNil(t, cfg.RateLimit)
	assert.InDelta(t, 5.0, cfg.RateLimit.Ingestion.RPS, 0.0001)
	assert.Equal(t, 10, cfg.RateLimit.Ingestion.Burst)

	assert.Equal(t, 500, cfg.Notification.MaxPageSize)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:     &AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Hour},
		Realtime: &RealtimeConfig{SendTimeout: time.Second, PongWait: 10 * time.Second, PingInterval: 20 * time.Second},
		Metrics:  &MetricsConfig{Enabled: false, Path: "/internal/metrics"},
	}

	applyDefaults(cfg)

	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, time.Second, cfg.Realtime.SendTimeout)
	// ping must fire before the pong deadline
	assert.Equal(t, 9*time.Second, cfg.Realtime.PingInterval)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_RejectsOutOfRangeBcryptCost(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{BcryptCost: 99}}

	applyDefaults(cfg)

	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
}
