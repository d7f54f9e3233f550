package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bestcat/internal/core/application/usecases/commands"
	"bestcat/internal/core/domain/model/kernel"
)

type createMenuRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// CreateMenu handles POST /api/stores/:storeId/menus.
func (s *Server) CreateMenu(c echo.Context) error {
	storeID, err := pathUUID(c, "storeId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req createMenuRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	menuID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuCommand(menuID, storeID, req.Name, req.Price, req.Description)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createMenuHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: menuID.String()})
}
