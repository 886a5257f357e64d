package handler

import (
	"time"

	"workgroup/config"
	"workgroup/internal/delivery/api/response"
	"workgroup/internal/infra/realtime"
	"workgroup/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Hub    *realtime.Hub
	Config *config.Config
}

// HealthHandler reports liveness together with streaming statistics.
type HealthHandler struct {
	hub       *realtime.Hub
	service   string
	startedAt time.Time
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		hub:       params.Hub,
		service:   params.Config.Env.ServiceName,
		startedAt: time.Now(),
	}
}

type healthStatus struct {
	Status          string `json:"status"`
	Service         string `json:"service,omitempty"`
	Uptime          string `json:"uptime"`
	RealtimeTenants int    `json:"realtime_tenants"`
}

func (h *HealthHandler) Check(c echo.Context) error {
	return response.OK(c, healthStatus{
		Status:          "ok",
		Service:         h.service,
		Uptime:          util.FormatDuration(time.Since(h.startedAt)),
		RealtimeTenants: h.hub.Tenants(),
	})
}
