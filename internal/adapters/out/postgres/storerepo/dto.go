// Package storerepo provides data transfer objects and mapping functions for
// store persistence. Soft deletion is stored as a plain stamp column rather
// than gorm's DeletedAt so that repository reads still see deleted rows;
// search invisibility is the query layer's concern.
package storerepo

import (
	"time"

	"github.com/google/uuid"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/store"
)

// StoreDTO represents the database structure for persisting stores.
type StoreDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	AreaID  uuid.UUID `gorm:"type:uuid;index"`
	Name    string    `gorm:"index"`
	Address string

	Categories []StoreCategoryDTO `gorm:"foreignKey:StoreID;references:ID"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
	DeletedBy *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

// StoreCategoryDTO links a store to one of its categories.
type StoreCategoryDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	StoreID    uuid.UUID `gorm:"type:uuid;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for store category links.
func (StoreCategoryDTO) TableName() string {
	return "store_categories"
}

// fromDomain converts a store entity to its database representation.
func fromDomain(entity *store.Store) StoreDTO {
	categoryIDs := entity.CategoryIDs()
	categories := make([]StoreCategoryDTO, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		categories = append(categories, StoreCategoryDTO{
			StoreID:    entity.ID().Bytes(),
			CategoryID: id.Bytes(),
		})
	}

	var deletedBy *uuid.UUID
	if id := entity.DeletedBy(); id != nil {
		raw := id.Bytes()
		deletedBy = &raw
	}

	return StoreDTO{
		ID:         entity.ID().Bytes(),
		OwnerID:    entity.OwnerID().Bytes(),
		AreaID:     entity.AreaID().Bytes(),
		Name:       entity.Name(),
		Address:    entity.Address(),
		Categories: categories,
		DeletedAt:  entity.DeletedAt(),
		DeletedBy:  deletedBy,
	}
}

// toDomain converts a database DTO to a store entity.
func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	areaID, err := kernel.UUIDFromBytes(dto.AreaID[:])
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]kernel.UUID, 0, len(dto.Categories))
	for _, category := range dto.Categories {
		categoryID, catErr := kernel.UUIDFromBytes(category.CategoryID[:])
		if catErr != nil {
			return nil, catErr
		}
		categoryIDs = append(categoryIDs, categoryID)
	}

	var deletedBy *kernel.UUID
	if dto.DeletedBy != nil {
		dID, delErr := kernel.UUIDFromBytes((*dto.DeletedBy)[:])
		if delErr != nil {
			return nil, delErr
		}
		deletedBy = &dID
	}

	return store.RestoreStore(id, ownerID, areaID, dto.Name, dto.Address,
		categoryIDs, dto.DeletedAt, deletedBy)
}
