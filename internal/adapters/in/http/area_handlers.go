package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"bestcat/internal/adapters/in/http/middleware"
	"bestcat/internal/core/application/usecases/commands"
	"bestcat/internal/core/application/usecases/queries"
	"bestcat/internal/core/domain/model/kernel"
)

type areaRequest struct {
	City string `json:"city"`
	Name string `json:"name"`
}

type areaResponse struct {
	ID        string    `json:"id"`
	City      string    `json:"city"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type searchAreasResponse struct {
	Areas []areaResponse `json:"areas"`
	Meta  pageMeta       `json:"meta"`
}

type pageMeta struct {
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// SearchAreas handles GET /api/areas.
func (s *Server) SearchAreas(c echo.Context) error {
	areaID, err := queryUUID(c, "areaId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := queryPage(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewSearchAreasQuery(
		c.QueryParam("city"), areaID, c.QueryParam("name"), page)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.searchAreasHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	areas := make([]areaResponse, len(result.Areas))
	for i, a := range result.Areas {
		areas[i] = areaResponse{
			ID:        a.ID.String(),
			City:      a.City,
			Name:      a.Name,
			CreatedAt: a.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, searchAreasResponse{
		Areas: areas,
		Meta: pageMeta{
			TotalCount: result.Meta.TotalCount,
			TotalPages: result.Meta.TotalPages,
			Page:       result.Meta.Page,
			Size:       result.Meta.Size,
		},
	})
}

// CreateArea handles POST /api/areas.
func (s *Server) CreateArea(c echo.Context) error {
	var req areaRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	areaID := kernel.NewUUID()
	cmd, err := commands.NewCreateAreaCommand(areaID, req.City, req.Name)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createAreaHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: areaID.String()})
}

// UpdateArea handles PUT /api/areas/:areaId.
func (s *Server) UpdateArea(c echo.Context) error {
	areaID, err := pathUUID(c, "areaId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req areaRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateAreaCommand(areaID, req.City, req.Name)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateAreaHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteArea handles DELETE /api/areas/:areaId.
func (s *Server) DeleteArea(c echo.Context) error {
	areaID, err := pathUUID(c, "areaId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteAreaCommand(areaID, callerID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.deleteAreaHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
