// Package handler contains the HTTP handlers for the REST API.
package handler

import (
	"net/http"
	"strconv"

	"creativehub/internal/delivery/http/response"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const maxListLimit = 500

// HealthCheck reports that the API process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// bindAndValidate decodes the body into dst and runs the registered validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// listFilter reads search, status, type, category, limit and skip from the query string.
func listFilter(c echo.Context) (repository.ListFilter, error) {
	filter := repository.ListFilter{
		Search:   c.QueryParam("search"),
		Status:   c.QueryParam("status"),
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
	}

	var err error
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		return filter, err
	}
	if filter.Skip, err = queryInt(c, "skip"); err != nil {
		return filter, err
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	return filter, nil
}

func queryInt(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a non-negative integer")
	}

	return v, nil
}
