package http

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"bestcat/internal/core/application/usecases/queries/criteria"
	"bestcat/internal/core/domain/model/kernel"
)

const (
	defaultPageIndex = 0
	defaultPageSize  = 20
)

// pathUUID parses a required UUID path parameter.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

// queryUUID parses an optional UUID query parameter; absent means nil.
func queryUUID(c echo.Context, name string) (*kernel.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &id, nil
}

// queryPage parses the page and size query parameters, applying defaults for
// absent values.
func queryPage(c echo.Context) (criteria.Page, error) {
	index := defaultPageIndex
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return criteria.Page{}, fmt.Errorf("invalid page: %w", err)
		}
		index = parsed
	}

	size := defaultPageSize
	if raw := c.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return criteria.Page{}, fmt.Errorf("invalid size: %w", err)
		}
		size = parsed
	}

	return criteria.NewPage(index, size)
}
