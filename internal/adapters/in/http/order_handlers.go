package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bestcat/internal/adapters/in/http/middleware"
	"bestcat/internal/core/application/usecases/commands"
	"bestcat/internal/core/application/usecases/queries"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/order"
)

type orderItemRequest struct {
	MenuID   string `json:"menuId"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	StoreID      string             `json:"storeId"`
	OrderType    string             `json:"orderType"`
	Address      string             `json:"address"`
	RequestNotes string             `json:"requestNotes"`
	Items        []orderItemRequest `json:"items"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderItemResponse struct {
	MenuID   string `json:"menuId"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	UserID       string              `json:"userId"`
	StoreID      string              `json:"storeId"`
	OrderType    string              `json:"orderType"`
	Status       string              `json:"status"`
	Address      string              `json:"address"`
	RequestNotes string              `json:"requestNotes"`
	Items        []orderItemResponse `json:"items"`
}

// CreateOrder handles POST /api/orders. The authenticated caller becomes the
// ordering user; item prices are snapshotted from the store's menu by the use
// case.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	storeID, err := kernel.UUIDFromString(req.StoreID)
	if err != nil {
		return badRequest(c, "invalid storeId: "+err.Error())
	}

	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		menuID, err := kernel.UUIDFromString(item.MenuID)
		if err != nil {
			return badRequest(c, "invalid menuId: "+err.Error())
		}
		items = append(items, commands.ItemInput{MenuID: menuID, Quantity: item.Quantity})
	}

	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, callerID, storeID, orderType, req.Address, req.RequestNotes, items)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]orderItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = orderItemResponse{
			MenuID:   item.MenuID.String(),
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return c.JSON(http.StatusOK, orderResponse{
		ID:           result.ID.String(),
		UserID:       result.UserID.String(),
		StoreID:      result.StoreID.String(),
		OrderType:    result.OrderType.String(),
		Status:       result.Status.String(),
		Address:      result.Address,
		RequestNotes: result.RequestNotes,
		Items:        items,
	})
}

// AddOrderItem handles POST /api/orders/:orderId/items.
func (s *Server) AddOrderItem(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req orderItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	menuID, err := kernel.UUIDFromString(req.MenuID)
	if err != nil {
		return badRequest(c, "invalid menuId: "+err.Error())
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, menuID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.addOrderItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/orders/:orderId/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req changeOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/orders/:orderId/cancel. Cancellation is a
// status transition, so terminal orders yield 409.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Cancelled)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
