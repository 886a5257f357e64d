package handler

import (
	"workgroup/internal/delivery/api/response"
	"workgroup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves ingestion and delivery registration.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

// SubmitEvent ingests a captured payment event into the caller's tenant.
func (h *NotificationHandler) SubmitEvent(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req usecase.SubmitEventInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	notification, err := h.notificationUC.SubmitEvent(c.Request().Context(), principal, &req)
	if err != nil {
		return err
	}

	return response.Created(c, notification)
}

// ListForGroup pages through a group's notifications, newest first.
func (h *NotificationHandler) ListForGroup(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	page, err := pageFrom(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationUC.ListForGroup(c.Request().Context(), principal, groupID, page)
	if err != nil {
		return err
	}

	return response.OK(c, notifications)
}

func (h *NotificationHandler) Get(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	notificationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.notificationUC.GetNotification(c.Request().Context(), principal, notificationID)
	if err != nil {
		return err
	}

	return response.OK(c, notification)
}

func (h *NotificationHandler) UpdateStatus(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	notificationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.UpdateStatusInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	notification, err := h.notificationUC.UpdateStatus(c.Request().Context(), principal, notificationID, req.Status)
	if err != nil {
		return err
	}

	return response.OK(c, notification)
}

// RegisterDelivery records that a notification reached a device and user.
// A repeated triple is answered with 409.
func (h *NotificationHandler) RegisterDelivery(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req usecase.RegisterDeliveryInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	record, err := h.notificationUC.RegisterDelivery(c.Request().Context(), principal, &req)
	if err != nil {
		return err
	}

	return response.Created(c, record)
}

func (h *NotificationHandler) ListDeliveries(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	notificationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	records, err := h.notificationUC.ListDeliveries(c.Request().Context(), principal, notificationID)
	if err != nil {
		return err
	}

	return response.OK(c, records)
}
