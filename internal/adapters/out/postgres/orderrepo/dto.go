// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate is written as one unit: the order
// row and its item rows always change together, so the item list can never
// diverge from its order.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	StoreID      uuid.UUID `gorm:"type:uuid;index"`
	OrderType    string
	Status       string `gorm:"index"`
	Address      string `gorm:"type:varchar(500)"`
	RequestNotes string

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. Rows are owned by their
// order and are rewritten whenever the aggregate is saved.
type OrderItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	MenuID   uuid.UUID `gorm:"type:uuid"`
	Quantity int
	Price    int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			MenuID:   item.MenuID().Bytes(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		StoreID:      aggregate.StoreID().Bytes(),
		OrderType:    aggregate.OrderType().String(),
		Status:       aggregate.Status().String(),
		Address:      aggregate.Address(),
		RequestNotes: aggregate.RequestNotes(),
		Items:        itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder,
// so corrupt rows surface as errors instead of invalid aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(menuID, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, userID, storeID, orderType, status,
		dto.Address, dto.RequestNotes, items)
}
