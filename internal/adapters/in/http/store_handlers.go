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

type storeRequest struct {
	AreaID      string   `json:"areaId"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	CategoryIDs []string `json:"categoryIds"`
}

type storeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	AreaID    string    `json:"areaId"`
	CreatedAt time.Time `json:"createdAt"`
}

type searchStoresResponse struct {
	Stores []storeResponse `json:"stores"`
	Meta   pageMeta        `json:"meta"`
}

func (r storeRequest) parse() (kernel.UUID, []kernel.UUID, error) {
	areaID, err := kernel.UUIDFromString(r.AreaID)
	if err != nil {
		return kernel.UUID{}, nil, err
	}

	categoryIDs := make([]kernel.UUID, 0, len(r.CategoryIDs))
	for _, raw := range r.CategoryIDs {
		categoryID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return kernel.UUID{}, nil, err
		}
		categoryIDs = append(categoryIDs, categoryID)
	}

	return areaID, categoryIDs, nil
}

// SearchStores handles GET /api/stores.
func (s *Server) SearchStores(c echo.Context) error {
	storeID, err := queryUUID(c, "storeId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	areaID, err := queryUUID(c, "areaId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := queryPage(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewSearchStoresQuery(
		c.QueryParam("name"), storeID, areaID, c.QueryParam("areaName"), page)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.searchStoresHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	stores := make([]storeResponse, len(result.Stores))
	for i, st := range result.Stores {
		stores[i] = storeResponse{
			ID:        st.ID.String(),
			Name:      st.Name,
			Address:   st.Address,
			AreaID:    st.AreaID.String(),
			CreatedAt: st.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, searchStoresResponse{
		Stores: stores,
		Meta: pageMeta{
			TotalCount: result.Meta.TotalCount,
			TotalPages: result.Meta.TotalPages,
			Page:       result.Meta.Page,
			Size:       result.Meta.Size,
		},
	})
}

// CreateStore handles POST /api/stores. The authenticated caller becomes the
// store's owner.
func (s *Server) CreateStore(c echo.Context) error {
	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	areaID, categoryIDs, err := req.parse()
	if err != nil {
		return badRequest(c, err.Error())
	}

	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	storeID := kernel.NewUUID()
	cmd, err := commands.NewCreateStoreCommand(
		storeID, callerID, areaID, req.Name, req.Address, categoryIDs)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createStoreHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: storeID.String()})
}

// UpdateStore handles PUT /api/stores/:storeId.
func (s *Server) UpdateStore(c echo.Context) error {
	storeID, err := pathUUID(c, "storeId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	areaID, categoryIDs, err := req.parse()
	if err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewUpdateStoreCommand(storeID, areaID, req.Name, req.Address, categoryIDs)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateStoreHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteStore handles DELETE /api/stores/:storeId.
func (s *Server) DeleteStore(c echo.Context) error {
	storeID, err := pathUUID(c, "storeId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteStoreCommand(storeID, callerID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.deleteStoreHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
