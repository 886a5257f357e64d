// Package handler holds the echo handlers of the API. Handlers return errors
// and leave rendering to the central error handler.
package handler

import (
	"strconv"

	deliverycontext "workgroup/internal/delivery/context"
	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/usecase"
	"workgroup/internal/util"

	"github.com/labstack/echo/v4"
)

func principalFrom(c echo.Context) (entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthorized
	}

	return principal, nil
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	//nolint:wrapcheck // already an AppError
	return c.Validate(req)
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := util.ParseID(c.Param(name))
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return n, nil
}

func pageFrom(c echo.Context) (usecase.Page, error) {
	skip, err := queryInt(c, "skip")
	if err != nil {
		return usecase.Page{}, err
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return usecase.Page{}, err
	}

	return usecase.Page{Skip: skip, Limit: limit}, nil
}
