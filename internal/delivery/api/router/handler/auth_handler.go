package handler

import (
	"log/slog"
	"net/http"

	"workgroup/internal/delivery/api/response"
	"workgroup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login, registration and user management.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.OK(c, token)
}

// RegisterOwner creates a working group and its first admin.
func (h *AuthHandler) RegisterOwner(c echo.Context) error {
	var req usecase.RegisterOwnerInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authUC.RegisterOwner(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Created(c, token)
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.Me(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// CreateMember adds a user to the admin's active group.
func (h *AuthHandler) CreateMember(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req usecase.CreateMemberInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.CreateMember(c.Request().Context(), principal, &req)
	if err != nil {
		return err
	}

	return response.Created(c, user)
}

// ListMembers lists the users of the admin's active group.
func (h *AuthHandler) ListMembers(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	users, err := h.authUC.MyMembers(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return response.OK(c, users)
}

// UpdateUser applies a partial profile update.
func (h *AuthHandler) UpdateUser(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.UpdateUserInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.UpdateUser(c.Request().Context(), principal, userID, &req)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// DeactivateUser disables a member's account.
func (h *AuthHandler) DeactivateUser(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.authUC.DeactivateUser(c.Request().Context(), principal, userID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
