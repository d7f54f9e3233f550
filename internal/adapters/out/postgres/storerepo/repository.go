package storerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/store"
	"bestcat/internal/pkg/errs"
)

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStoreRepository creates a new GORM store repository.
func NewGormStoreRepository(db *gorm.DB, tracker aggregateTracker) *GormStoreRepository {
	return &GormStoreRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new store with its category links to the database.
func (r *GormStoreRepository) Add(ctx context.Context, entity *store.Store) error {
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

// Update saves an existing store, including its soft-delete stamp, and
// rewrites its category links.
func (r *GormStoreRepository) Update(ctx context.Context, entity *store.Store) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).Model(&StoreDTO{}).
		Where("id = ?", dto.ID).
		Omit("Categories").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("store", entity.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("store_id = ?", dto.ID).
		Delete(&StoreCategoryDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Categories) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Categories).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves a store by ID, soft-deleted or not.
func (r *GormStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).Preload("Categories").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
