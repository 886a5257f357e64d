package handler

import (
	"net/http"

	"workgroup/internal/delivery/api/response"
	"workgroup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
}

// ScheduleHandler serves group and individual access windows.
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
}

func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{scheduleUC: params.ScheduleUC}
}

func (h *ScheduleHandler) CreateGroupSchedule(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.GroupScheduleInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	schedule, err := h.scheduleUC.CreateGroupSchedule(c.Request().Context(), principal, groupID, &req)
	if err != nil {
		return err
	}

	return response.Created(c, schedule)
}

func (h *ScheduleHandler) ListGroupSchedules(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	schedules, err := h.scheduleUC.ListGroupSchedules(c.Request().Context(), principal, groupID)
	if err != nil {
		return err
	}

	return response.OK(c, schedules)
}

func (h *ScheduleHandler) UpdateGroupSchedule(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	scheduleID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.GroupScheduleInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	schedule, err := h.scheduleUC.UpdateGroupSchedule(c.Request().Context(), principal, scheduleID, &req)
	if err != nil {
		return err
	}

	return response.OK(c, schedule)
}

func (h *ScheduleHandler) DeleteGroupSchedule(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	scheduleID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.scheduleUC.DeleteGroupSchedule(c.Request().Context(), principal, scheduleID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ScheduleHandler) CreateIndividualSchedule(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req usecase.IndividualScheduleInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	schedule, err := h.scheduleUC.CreateIndividualSchedule(c.Request().Context(), principal, &req)
	if err != nil {
		return err
	}

	return response.Created(c, schedule)
}

func (h *ScheduleHandler) GetIndividualSchedule(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	scheduleID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	schedule, err := h.scheduleUC.GetIndividualSchedule(c.Request().Context(), principal, scheduleID)
	if err != nil {
		return err
	}

	return response.OK(c, schedule)
}

func (h *ScheduleHandler) UpdateIndividualSchedule(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	scheduleID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.IndividualScheduleInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	schedule, err := h.scheduleUC.UpdateIndividualSchedule(c.Request().Context(), principal, scheduleID, &req)
	if err != nil {
		return err
	}

	return response.OK(c, schedule)
}

func (h *ScheduleHandler) DeleteIndividualSchedule(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	scheduleID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.scheduleUC.DeleteIndividualSchedule(c.Request().Context(), principal, scheduleID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ScheduleHandler) ListByUser(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	schedules, err := h.scheduleUC.ListSchedulesByUser(c.Request().Context(), principal, userID)
	if err != nil {
		return err
	}

	return response.OK(c, schedules)
}

func (h *ScheduleHandler) ListByDevice(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	schedules, err := h.scheduleUC.ListSchedulesByDevice(c.Request().Context(), principal, deviceID)
	if err != nil {
		return err
	}

	return response.OK(c, schedules)
}
