package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "workgroup/internal/delivery/context"
	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves bearer tokens to principals and guards admin routes.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the access token and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return domainerrors.ErrInvalidToken.WithDetails("token must use the Bearer scheme")
		}

		ctx := c.Request().Context()
		principal, err := m.authUC.Authenticate(ctx, strings.TrimSpace(token))
		if err != nil {
			return err
		}

		deliverycontext.SetPrincipal(c, principal)

		attrs := []any{slog.Int64("user_id", principal.UserID)}
		if tenantID, ok := principal.TenantID(); ok {
			attrs = append(attrs, slog.Int64("tenant_id", tenantID))
		}
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger.With(attrs...))))
		}

		return next(c)
	}
}

// RequireAdmin rejects principals without the admin role in their active tenant.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := deliverycontext.GetPrincipal(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		if principal.Role != entity.RoleAdmin {
			return domainerrors.ErrForbidden.WithDetails("admin role required")
		}

		return next(c)
	}
}
