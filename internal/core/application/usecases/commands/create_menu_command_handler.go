package commands

import (
	"context"

	"bestcat/internal/core/domain/model/menu"
	"bestcat/internal/pkg/errs"
)

// CreateMenuCommandHandler adds an orderable item to a store's menu.
// The owning store must exist and not be soft-deleted.
type CreateMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuCommandHandler creates a handler for menu creation.
func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu creation command.
func (h *CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) error {
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

	entity, err := menu.NewMenu(cmd.MenuID(), cmd.StoreID(), cmd.Name(), cmd.Price(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.MenuRepository().Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
