package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workgroup/config"
	"workgroup/internal/delivery/api/middleware"
	"workgroup/internal/delivery/api/router/handler"
	"workgroup/internal/infra/metrics"
	"workgroup/internal/infra/realtime"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, metricsEnabled bool) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Realtime:  &config.RealtimeConfig{PingInterval: time.Second, PongWait: 2 * time.Second},
		RateLimit: &config.RateLimitConfig{Ingestion: config.LimiterConfig{RPS: 1, Burst: 1}},
		Metrics:   &config.MetricsConfig{Enabled: metricsEnabled, Path: "/metrics"},
	}
	m := metrics.New()
	hub := realtime.NewHub(time.Second, logger, m)

	r := NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{Logger: logger}),
		GroupHandler:        handler.NewGroupHandler(handler.GroupHandlerParams{}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{}),
		ScheduleHandler:     handler.NewScheduleHandler(handler.ScheduleHandlerParams{}),
		WSHandler:           handler.NewWSHandler(handler.WSHandlerParams{Hub: hub, Config: cfg, Logger: logger}),
		HealthHandler:       handler.NewHealthHandler(handler.HealthHandlerParams{Hub: hub, Config: cfg}),
		AuthMiddleware:      middleware.NewAuthMiddleware(nil),
		IngestionLimiter:    middleware.NewIngestionRateLimiter(cfg, m),
		Metrics:             m,
		Config:              cfg,
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return e
}

func TestRouter_RegistersEveryEndpoint(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, true)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"GET /health",
		"GET /metrics",
		"POST /auth/token",
		"POST /auth/register-owner",
		"GET /ws",
		"GET /api/v1/auth/me",
		"POST /api/v1/auth/members",
		"GET /api/v1/auth/members",
		"PUT /api/v1/auth/users/:id",
		"PATCH /api/v1/auth/users/:id/deactivate",
		"POST /api/v1/groups",
		"GET /api/v1/groups/mine",
		"GET /api/v1/groups/:id",
		"PUT /api/v1/groups/:id",
		"PATCH /api/v1/groups/:id/deactivate",
		"POST /api/v1/devices",
		"GET /api/v1/devices/:id",
		"GET /api/v1/groups/:id/devices",
		"PUT /api/v1/devices/:id",
		"PATCH /api/v1/devices/:id/deactivate",
		"POST /api/v1/devices/:id/heartbeat",
		"POST /api/v1/devices/:id/users",
		"GET /api/v1/devices/:id/users",
		"DELETE /api/v1/devices/assignments/:assignmentId",
		"GET /api/v1/devices/:id/qr",
		"POST /api/v1/notifications/incoming",
		"GET /api/v1/groups/:id/notifications",
		"GET /api/v1/notifications/:id",
		"PATCH /api/v1/notifications/:id/status",
		"POST /api/v1/notifications/deliveries",
		"GET /api/v1/notifications/:id/deliveries",
		"POST /api/v1/groups/:id/schedules",
		"GET /api/v1/groups/:id/schedules",
		"PUT /api/v1/schedules/group/:id",
		"DELETE /api/v1/schedules/group/:id",
		"POST /api/v1/schedules/individual",
		"GET /api/v1/schedules/individual/:id",
		"PUT /api/v1/schedules/individual/:id",
		"DELETE /api/v1/schedules/individual/:id",
		"GET /api/v1/users/:id/schedules",
		"GET /api/v1/devices/:id/schedules",
	}
	for _, route := range want {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestRouter_MetricsEndpointFollowsConfig(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, false)
	for _, route := range e.Routes() {
		assert.NotEqual(t, "/metrics", route.Path)
	}

	e = newTestRouter(t, true)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "workgroup_realtime_connections")
}

func TestRouter_APIRequiresBearerToken(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, false)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}
