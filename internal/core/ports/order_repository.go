// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, and the order
// event publisher. These interfaces keep the core free of persistence and
// transport technology.
package ports

import (
	"context"
	"time"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The full aggregate is written on every save: order row plus item rows,
// so the item list can never outlive or diverge from its order.
type OrderRepository interface {
	// Add persists a new order aggregate with all its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all line items.
	// Returns an ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPlacedBefore retrieves orders still in Placed status that were
	// created before the cutoff. Used by the stale-order cancellation job.
	GetAllPlacedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
