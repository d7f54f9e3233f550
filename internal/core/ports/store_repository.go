package ports

import (
	"context"

	"bestcat/internal/core/domain/model/area"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store entities.
type StoreRepository interface {
	// Add persists a new store.
	Add(ctx context.Context, entity *store.Store) error

	// Update persists changes to an existing store, including its
	// soft-delete stamp and category links.
	Update(ctx context.Context, entity *store.Store) error

	// Get retrieves a store by its unique identifier, soft-deleted or not.
	// Returns an ObjectNotFoundError when the store does not exist.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)
}

// AreaRepository defines the persistence contract for area entities.
type AreaRepository interface {
	// Add persists a new area.
	Add(ctx context.Context, entity *area.Area) error

	// Update persists changes to an existing area, including its
	// soft-delete stamp.
	Update(ctx context.Context, entity *area.Area) error

	// Get retrieves an area by its unique identifier, soft-deleted or not.
	// Returns an ObjectNotFoundError when the area does not exist.
	Get(ctx context.Context, id kernel.UUID) (*area.Area, error)
}
