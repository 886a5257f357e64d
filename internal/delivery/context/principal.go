package context

import (
	"workgroup/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the authenticated principal in echo.Context.
const KeyPrincipal ContextKey = "principal"

// SetPrincipal stores the authenticated principal in echo.Context.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
}

// GetPrincipal extracts the authenticated principal from echo.Context.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(entity.Principal)

	return principal, ok
}
