// Package arearepo provides data transfer objects and mapping functions for
// area persistence.
package arearepo

import (
	"time"

	"github.com/google/uuid"

	"bestcat/internal/core/domain/model/area"
	"bestcat/internal/core/domain/model/kernel"
)

// AreaDTO represents the database structure for persisting delivery areas.
type AreaDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	City string    `gorm:"index"`
	Name string    `gorm:"index"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
	DeletedBy *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for area entities.
func (AreaDTO) TableName() string {
	return "areas"
}

// fromDomain converts an area entity to its database representation.
func fromDomain(entity *area.Area) AreaDTO {
	var deletedBy *uuid.UUID
	if id := entity.DeletedBy(); id != nil {
		raw := id.Bytes()
		deletedBy = &raw
	}

	return AreaDTO{
		ID:        entity.ID().Bytes(),
		City:      entity.City(),
		Name:      entity.Name(),
		DeletedAt: entity.DeletedAt(),
		DeletedBy: deletedBy,
	}
}

// toDomain converts a database DTO to an area entity.
func toDomain(dto AreaDTO) (*area.Area, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var deletedBy *kernel.UUID
	if dto.DeletedBy != nil {
		dID, delErr := kernel.UUIDFromBytes((*dto.DeletedBy)[:])
		if delErr != nil {
			return nil, delErr
		}
		deletedBy = &dID
	}

	return area.RestoreArea(id, dto.City, dto.Name, dto.DeletedAt, deletedBy)
}
