package commands

import (
	"context"
	"fmt"

	"bestcat/internal/core/domain/model/order"
	"bestcat/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Verifies the store, snapshots menu prices into the order lines, and
// creates the order in Placed status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), userID, storeID,
//	    order.Delivery, "456 Oak Avenue", "",
//	    []commands.ItemInput{{MenuID: menuID, Quantity: 1}})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderingUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The referenced store must exist and not be soft-deleted, and every menu
// item must belong to that store. Each line's price is copied from the menu
// at this moment, so later menu edits never change the order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	storeEntity, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}
	if storeEntity.IsDeleted() {
		return errs.NewObjectNotFoundError("store", cmd.StoreID().String())
	}

	menuRepo := uow.MenuRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		menuEntity, err := menuRepo.Get(ctx, input.MenuID)
		if err != nil {
			return err
		}
		if !menuEntity.StoreID().IsEqual(cmd.StoreID()) {
			return errs.NewValueIsInvalidErrorWithCause("menu id",
				fmt.Errorf("menu %s does not belong to store %s",
					input.MenuID.String(), cmd.StoreID().String()))
		}

		item, err := order.NewItem(input.MenuID, input.Quantity, menuEntity.Price())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.StoreID(),
		cmd.OrderType(),
		cmd.Address(),
		cmd.RequestNotes(),
		items,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
