package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"workgroup/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	t.Parallel()

	c := newEchoContext()
	assert.NotEmpty(t, GetRequestID(c), "a fresh id is generated when none is set")

	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))
	assert.Equal(t, "from-ctx", GetRequestID(c))

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	t.Parallel()

	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestPrincipal(t *testing.T) {
	t.Parallel()

	c := newEchoContext()
	_, ok := GetPrincipal(c)
	assert.False(t, ok)

	groupID := int64(7)
	SetPrincipal(c, entity.Principal{UserID: 9, Role: entity.RoleMember, WorkingGroupID: &groupID})

	principal, ok := GetPrincipal(c)
	assert.True(t, ok)
	assert.Equal(t, int64(9), principal.UserID)
	assert.True(t, principal.InTenant(7))
}
