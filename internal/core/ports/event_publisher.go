package ports

import (
	"context"

	"bestcat/internal/core/domain/model/order"
)

// OrderEventPublisher announces order status changes to interested
// consumers. Publishing happens after the owning transaction committed;
// a publish failure must not roll back the state change.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an event carrying the order's identifier
	// and its new status.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
