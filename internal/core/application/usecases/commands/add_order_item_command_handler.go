package commands

import (
	"context"
	"fmt"

	"bestcat/internal/core/domain/model/order"
	"bestcat/internal/pkg/errs"
)

// AddOrderItemCommandHandler appends a line item to an order that is still
// in Placed status. The aggregate rejects the item once the store has
// accepted the order or the order reached a terminal status.
type AddOrderItemCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
func NewAddOrderItemCommandHandler(uowFactory OrderingUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command.
// The menu item must belong to the same store the order was placed with;
// its current price becomes the line's snapshot.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	menuEntity, err := uow.MenuRepository().Get(ctx, cmd.MenuID())
	if err != nil {
		return err
	}
	if !menuEntity.StoreID().IsEqual(aggregate.StoreID()) {
		return errs.NewValueIsInvalidErrorWithCause("menu id",
			fmt.Errorf("menu %s does not belong to store %s",
				cmd.MenuID().String(), aggregate.StoreID().String()))
	}

	item, err := order.NewItem(cmd.MenuID(), cmd.Quantity(), menuEntity.Price())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
