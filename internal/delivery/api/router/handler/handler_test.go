package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "workgroup/internal/delivery/api/middleware"
	"workgroup/internal/delivery/api/response"
	"workgroup/internal/delivery/api/validator"
	deliverycontext "workgroup/internal/delivery/context"
	"workgroup/internal/domain/entity"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func tenantMember(userID, groupID int64, role entity.Role) entity.Principal {
	return entity.Principal{UserID: userID, Username: "user", Role: role, WorkingGroupID: &groupID}
}

// serve runs a single route through e with principal already authenticated.
func serve(e *echo.Echo, method, route, target, body string, principal *entity.Principal, h echo.HandlerFunc) *httptest.ResponseRecorder {
	e.Add(method, route, h, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if principal != nil {
				deliverycontext.SetPrincipal(c, *principal)
			}

			return next(c)
		}
	})

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T                  `json:"data"`
		Meta *response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Meta)

	return body.Data
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}
