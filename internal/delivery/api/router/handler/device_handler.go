package handler

import (
	"log/slog"
	"net/http"

	"workgroup/internal/delivery/api/response"
	deliverycontext "workgroup/internal/delivery/context"
	"workgroup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// Create registers a device in a working group.
func (h *DeviceHandler) Create(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req usecase.CreateDeviceInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.Create(c.Request().Context(), principal, &req)
	if err != nil {
		return err
	}

	return response.Created(c, device)
}

// Get returns a single device.
func (h *DeviceHandler) Get(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	device, err := h.deviceUC.Get(c.Request().Context(), principal, deviceID)
	if err != nil {
		return err
	}

	return response.OK(c, device)
}

// ListByGroup lists the devices of a working group.
func (h *DeviceHandler) ListByGroup(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.ListByGroup(c.Request().Context(), principal, groupID)
	if err != nil {
		return err
	}

	return response.OK(c, devices)
}

// Update applies a partial device update.
func (h *DeviceHandler) Update(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.UpdateDeviceInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.Update(c.Request().Context(), principal, deviceID, &req)
	if err != nil {
		return err
	}

	return response.OK(c, device)
}

// Deactivate handles deactivating a device
func (h *DeviceHandler) Deactivate(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.Deactivate(c.Request().Context(), principal, deviceID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Heartbeat marks the device as seen from the caller's address.
func (h *DeviceHandler) Heartbeat(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	device, err := h.deviceUC.Heartbeat(c.Request().Context(), principal, deviceID, c.RealIP())
	if err != nil {
		return err
	}

	return response.OK(c, device)
}

// AssignUser links a user to the device.
func (h *DeviceHandler) AssignUser(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.AssignUserInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	assignment, err := h.deviceUC.AssignUser(c.Request().Context(), principal, deviceID, &req)
	if err != nil {
		return err
	}

	return response.Created(c, assignment)
}

// AssignedUsers lists the device's user assignments.
func (h *DeviceHandler) AssignedUsers(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	assignments, err := h.deviceUC.AssignedUsers(c.Request().Context(), principal, deviceID)
	if err != nil {
		return err
	}

	return response.OK(c, assignments)
}

// RemoveAssignment deletes a device-user link.
func (h *DeviceHandler) RemoveAssignment(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	assignmentID, err := pathID(c, "assignmentId")
	if err != nil {
		return err
	}

	if err := h.deviceUC.RemoveAssignment(c.Request().Context(), principal, assignmentID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ProvisioningQR renders the device's provisioning code as PNG.
func (h *DeviceHandler) ProvisioningQR(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.deviceUC.ProvisioningQR(c.Request().Context(), principal, deviceID)
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Provisioning QR generated",
		slog.Int64("device_id", deviceID),
		slog.Int("bytes", len(png)),
	)

	return c.Blob(http.StatusOK, "image/png", png)
}
