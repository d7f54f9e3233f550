package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/order"
	"bestcat/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves one order and its line items from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// has the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var id, userID, storeID uuid.UUID
	var orderType, status, address, requestNotes string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			store_id,
			order_type,
			status,
			address,
			request_notes
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &userID, &storeID, &orderType, &status, &address, &requestNotes)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("order", query.OrderID().String(), err)
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		Address:      address,
		RequestNotes: requestNotes,
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.OrderType, err = order.TypeFromString(orderType); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Status, err = order.StatusFromString(status); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_id,
			quantity,
			price
		FROM order_items
		WHERE order_id = ?
		ORDER BY menu_id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var menuID uuid.UUID
		var quantity, price int

		if err = rows.Scan(&menuID, &quantity, &price); err != nil {
			return GetOrderQueryResponse{}, err
		}

		itemMenuID, idErr := kernel.UUIDFromBytes(menuID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}

		resp.Items = append(resp.Items, OrderItemResponse{
			MenuID:   itemMenuID,
			Quantity: quantity,
			Price:    price,
		})
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
