// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"workgroup/config"
	"workgroup/internal/delivery/api/middleware"
	"workgroup/internal/delivery/api/router/handler"
	"workgroup/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	GroupHandler        *handler.GroupHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	ScheduleHandler     *handler.ScheduleHandler
	WSHandler           *handler.WSHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	IngestionLimiter    *middleware.IngestionRateLimiter
	Metrics             *metrics.Metrics `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	groupHandler        *handler.GroupHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	scheduleHandler     *handler.ScheduleHandler
	wsHandler           *handler.WSHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	ingestionLimiter    *middleware.IngestionRateLimiter
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		groupHandler:        params.GroupHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		scheduleHandler:     params.ScheduleHandler,
		wsHandler:           params.WSHandler,
		healthHandler:       params.HealthHandler,
		authMiddleware:      params.AuthMiddleware,
		ingestionLimiter:    params.IngestionLimiter,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.authHandler.Login)
		authGroup.POST("/register-owner", r.authHandler.RegisterOwner)
	}

	// Token travels in the query string; browsers cannot set headers on upgrades.
	e.GET("/ws", r.wsHandler.Stream)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication
	admin := r.authMiddleware.RequireAdmin

	usersGroup := apiV1.Group("/auth")
	{
		usersGroup.GET("/me", r.authHandler.Me)
		usersGroup.POST("/members", r.authHandler.CreateMember, admin)
		usersGroup.GET("/members", r.authHandler.ListMembers, admin)
		usersGroup.PUT("/users/:id", r.authHandler.UpdateUser)
		usersGroup.PATCH("/users/:id/deactivate", r.authHandler.DeactivateUser, admin)
	}

	groupsGroup := apiV1.Group("/groups")
	{
		groupsGroup.POST("", r.groupHandler.Create, admin)
		groupsGroup.GET("/mine", r.groupHandler.Mine)
		groupsGroup.GET("/:id", r.groupHandler.Get)
		groupsGroup.PUT("/:id", r.groupHandler.Update, admin)
		groupsGroup.PATCH("/:id/deactivate", r.groupHandler.Deactivate, admin)

		groupsGroup.GET("/:id/devices", r.deviceHandler.ListByGroup)
		groupsGroup.GET("/:id/notifications", r.notificationHandler.ListForGroup)
		groupsGroup.POST("/:id/schedules", r.scheduleHandler.CreateGroupSchedule, admin)
		groupsGroup.GET("/:id/schedules", r.scheduleHandler.ListGroupSchedules)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.Create, admin)
		devicesGroup.GET("/:id", r.deviceHandler.Get)
		devicesGroup.PUT("/:id", r.deviceHandler.Update, admin)
		devicesGroup.PATCH("/:id/deactivate", r.deviceHandler.Deactivate, admin)
		devicesGroup.POST("/:id/heartbeat", r.deviceHandler.Heartbeat)
		devicesGroup.POST("/:id/users", r.deviceHandler.AssignUser, admin)
		devicesGroup.GET("/:id/users", r.deviceHandler.AssignedUsers)
		devicesGroup.DELETE("/assignments/:assignmentId", r.deviceHandler.RemoveAssignment, admin)
		devicesGroup.GET("/:id/qr", r.deviceHandler.ProvisioningQR, admin)
		devicesGroup.GET("/:id/schedules", r.scheduleHandler.ListByDevice)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.POST("/incoming", r.notificationHandler.SubmitEvent, r.ingestionLimiter.Middleware)
		notificationsGroup.POST("/deliveries", r.notificationHandler.RegisterDelivery)
		notificationsGroup.GET("/:id", r.notificationHandler.Get)
		notificationsGroup.PATCH("/:id/status", r.notificationHandler.UpdateStatus)
		notificationsGroup.GET("/:id/deliveries", r.notificationHandler.ListDeliveries)
	}

	schedulesGroup := apiV1.Group("/schedules")
	{
		schedulesGroup.PUT("/group/:id", r.scheduleHandler.UpdateGroupSchedule, admin)
		schedulesGroup.DELETE("/group/:id", r.scheduleHandler.DeleteGroupSchedule, admin)
		schedulesGroup.POST("/individual", r.scheduleHandler.CreateIndividualSchedule)
		schedulesGroup.GET("/individual/:id", r.scheduleHandler.GetIndividualSchedule)
		schedulesGroup.PUT("/individual/:id", r.scheduleHandler.UpdateIndividualSchedule)
		schedulesGroup.DELETE("/individual/:id", r.scheduleHandler.DeleteIndividualSchedule)
	}

	apiV1.GET("/users/:id/schedules", r.scheduleHandler.ListByUser)
}
