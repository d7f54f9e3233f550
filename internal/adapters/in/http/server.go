// Package http exposes the application's use cases over a REST API.
// Handlers stay thin: they parse requests, build commands and queries, and
// translate domain errors to status codes. Authorization is enforced here
// via role-gated routes; the core never sees roles.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bestcat/internal/adapters/in/http/middleware"
	"bestcat/internal/core/application/usecases/commands"
	"bestcat/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	addOrderItemHandler      commands.AddOrderItemCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createStoreHandler       commands.CreateStoreCommandHandler
	updateStoreHandler       commands.UpdateStoreCommandHandler
	deleteStoreHandler       commands.DeleteStoreCommandHandler
	createAreaHandler        commands.CreateAreaCommandHandler
	updateAreaHandler        commands.UpdateAreaCommandHandler
	deleteAreaHandler        commands.DeleteAreaCommandHandler
	createMenuHandler        commands.CreateMenuCommandHandler
	recordAiLogHandler       commands.RecordAiLogCommandHandler

	// Query handlers
	searchStoresHandler queries.SearchStoresQueryHandler
	searchAreasHandler  queries.SearchAreasQueryHandler
	getOrderHandler     queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createStoreHandler commands.CreateStoreCommandHandler,
	updateStoreHandler commands.UpdateStoreCommandHandler,
	deleteStoreHandler commands.DeleteStoreCommandHandler,
	createAreaHandler commands.CreateAreaCommandHandler,
	updateAreaHandler commands.UpdateAreaCommandHandler,
	deleteAreaHandler commands.DeleteAreaCommandHandler,
	createMenuHandler commands.CreateMenuCommandHandler,
	recordAiLogHandler commands.RecordAiLogCommandHandler,
	searchStoresHandler queries.SearchStoresQueryHandler,
	searchAreasHandler queries.SearchAreasQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		addOrderItemHandler:      addOrderItemHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createStoreHandler:       createStoreHandler,
		updateStoreHandler:       updateStoreHandler,
		deleteStoreHandler:       deleteStoreHandler,
		createAreaHandler:        createAreaHandler,
		updateAreaHandler:        updateAreaHandler,
		deleteAreaHandler:        deleteAreaHandler,
		createMenuHandler:        createMenuHandler,
		recordAiLogHandler:       recordAiLogHandler,
		searchStoresHandler:      searchStoresHandler,
		searchAreasHandler:       searchAreasHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// RegisterRoutes wires the server's handlers onto the echo instance.
// All /api routes require authentication; write routes are further gated by
// role.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api", middleware.Auth(jwtSecret))

	managers := middleware.RequireRoles(middleware.RoleMaster, middleware.RoleManager)
	storeWriters := middleware.RequireRoles(
		middleware.RoleMaster, middleware.RoleManager, middleware.RoleOwner)
	customers := middleware.RequireRoles(middleware.RoleCustomer)
	orderUpdaters := middleware.RequireRoles(
		middleware.RoleOwner, middleware.RoleManager, middleware.RoleMaster)
	cancellers := middleware.RequireRoles(
		middleware.RoleCustomer, middleware.RoleOwner, middleware.RoleManager, middleware.RoleMaster)
	owners := middleware.RequireRoles(middleware.RoleOwner)

	api.GET("/areas", s.SearchAreas)
	api.POST("/areas", s.CreateArea, managers)
	api.PUT("/areas/:areaId", s.UpdateArea, managers)
	api.DELETE("/areas/:areaId", s.DeleteArea, managers)

	api.GET("/stores", s.SearchStores)
	api.POST("/stores", s.CreateStore, storeWriters)
	api.PUT("/stores/:storeId", s.UpdateStore, storeWriters)
	api.DELETE("/stores/:storeId", s.DeleteStore, storeWriters)
	api.POST("/stores/:storeId/menus", s.CreateMenu, storeWriters)

	api.POST("/orders", s.CreateOrder, customers)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/items", s.AddOrderItem, customers)
	api.PATCH("/orders/:orderId/status", s.ChangeOrderStatus, orderUpdaters)
	api.POST("/orders/:orderId/cancel", s.CancelOrder, cancellers)

	api.POST("/ai-logs", s.RecordAiLog, owners)
}
