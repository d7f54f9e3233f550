package commands

import (
	"context"
	"log/slog"

	"bestcat/internal/core/ports"
)

// ChangeOrderStatusCommandHandler moves an order along its status lifecycle.
// Every change goes through the aggregate's transition rules, so an illegal
// move fails before any state is written. After a successful commit the new
// status is announced through the event publisher; a publish failure is
// logged but never undoes the committed change.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status change command.
// Transitioning to the current status is a no-op success; an illegal edge
// returns an InvalidTransitionError and leaves the order untouched.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order changed event",
			slog.String("order_id", aggregate.ID().String()),
			slog.String("status", aggregate.Status().String()),
			slog.Any("error", err))
	}

	return nil
}
