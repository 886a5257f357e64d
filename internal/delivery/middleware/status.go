package middleware

import (
	"net/http"

	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusOf predicts the HTTP status the error handler will render for err.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
