// Package menurepo provides data transfer objects and mapping functions for
// menu persistence.
package menurepo

import (
	"time"

	"github.com/google/uuid"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/menu"
)

// MenuDTO represents the database structure for persisting menu items.
type MenuDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Price       int
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for menu entities.
func (MenuDTO) TableName() string {
	return "menus"
}

func fromDomain(entity *menu.Menu) MenuDTO {
	return MenuDTO{
		ID:          entity.ID().Bytes(),
		StoreID:     entity.StoreID().Bytes(),
		Name:        entity.Name(),
		Price:       entity.Price(),
		Description: entity.Description(),
	}
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	return menu.NewMenu(id, storeID, dto.Name, dto.Price, dto.Description)
}
