package handler

import (
	"net/http"

	"workgroup/internal/delivery/api/response"
	"workgroup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	GroupUC usecase.GroupUsecase
}

// GroupHandler serves working group endpoints.
type GroupHandler struct {
	groupUC usecase.GroupUsecase
}

func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{groupUC: params.GroupUC}
}

func (h *GroupHandler) Create(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req usecase.CreateGroupInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	group, err := h.groupUC.Create(c.Request().Context(), principal, &req)
	if err != nil {
		return err
	}

	return response.Created(c, group)
}

func (h *GroupHandler) Mine(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	groups, err := h.groupUC.MyGroups(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return response.OK(c, groups)
}

func (h *GroupHandler) Get(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	group, err := h.groupUC.Get(c.Request().Context(), principal, groupID)
	if err != nil {
		return err
	}

	return response.OK(c, group)
}

func (h *GroupHandler) Update(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.UpdateGroupInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	group, err := h.groupUC.Update(c.Request().Context(), principal, groupID, &req)
	if err != nil {
		return err
	}

	return response.OK(c, group)
}

func (h *GroupHandler) Deactivate(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.groupUC.Deactivate(c.Request().Context(), principal, groupID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
