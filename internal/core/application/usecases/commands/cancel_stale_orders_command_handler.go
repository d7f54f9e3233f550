package commands

import (
	"context"
	"log/slog"

	"bestcat/internal/core/domain/model/order"
	"bestcat/internal/core/ports"
)

// CancelStaleOrdersCommandHandler cancels orders that sat in Placed status
// past the cutoff. Cancellation uses the same guarded transition as any
// other status change, so an order accepted between the query and the write
// is skipped rather than force-cancelled.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order
// sweep.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the sweep command. All cancellations commit in one
// transaction; events are published afterwards, once the new statuses are
// durable.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetAllPlacedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}

	cancelled := make([]*order.Order, 0, len(stale))
	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		cancelled = append(cancelled, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range cancelled {
		if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
			h.logger.WarnContext(ctx, "failed to publish order changed event",
				slog.String("order_id", aggregate.ID().String()),
				slog.String("status", aggregate.Status().String()),
				slog.Any("error", err))
		}
	}

	return nil
}
