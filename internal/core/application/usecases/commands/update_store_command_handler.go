package commands

import (
	"context"

	"bestcat/internal/pkg/errs"
)

// UpdateStoreCommandHandler replaces a store's mutable attributes.
type UpdateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewUpdateStoreCommandHandler creates a handler for store updates.
func NewUpdateStoreCommandHandler(uowFactory StoreUoWFactory) UpdateStoreCommandHandler {
	return UpdateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store update command. Moving the store to a different
// area verifies the new area exists and is not soft-deleted.
func (h *UpdateStoreCommandHandler) Handle(ctx context.Context, cmd UpdateStoreCommand) error {
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

	storeRepo := uow.StoreRepository()
	entity, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	areaEntity, err := uow.AreaRepository().Get(ctx, cmd.AreaID())
	if err != nil {
		return err
	}
	if areaEntity.IsDeleted() {
		return errs.NewObjectNotFoundError("area", cmd.AreaID().String())
	}

	if err = entity.Update(cmd.Name(), cmd.Address(), cmd.AreaID(), cmd.CategoryIDs()); err != nil {
		return err
	}

	if err = storeRepo.Update(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
