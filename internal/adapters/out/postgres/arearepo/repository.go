package arearepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bestcat/internal/core/domain/model/area"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/errs"
)

// GormAreaRepository implements AreaRepository using GORM.
type GormAreaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAreaRepository creates a new GORM area repository.
func NewGormAreaRepository(db *gorm.DB, tracker aggregateTracker) *GormAreaRepository {
	return &GormAreaRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new area to the database.
func (r *GormAreaRepository) Add(ctx context.Context, entity *area.Area) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Update saves an existing area, including its soft-delete stamp.
func (r *GormAreaRepository) Update(ctx context.Context, entity *area.Area) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).Model(&AreaDTO{}).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("area", entity.ID().String())
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves an area by ID, soft-deleted or not.
func (r *GormAreaRepository) Get(ctx context.Context, id kernel.UUID) (*area.Area, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AreaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("area", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
