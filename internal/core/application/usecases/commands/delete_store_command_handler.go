package commands

import (
	"context"
)

// DeleteStoreCommandHandler soft-deletes a store. Repeating the deletion is
// a no-op success, so the operation is safe to retry.
type DeleteStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewDeleteStoreCommandHandler creates a handler for store deletion.
func NewDeleteStoreCommandHandler(uowFactory StoreUoWFactory) DeleteStoreCommandHandler {
	return DeleteStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store deletion command.
func (h *DeleteStoreCommandHandler) Handle(ctx context.Context, cmd DeleteStoreCommand) error {
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

	if err = entity.Delete(cmd.DeletedBy()); err != nil {
		return err
	}

	if err = storeRepo.Update(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
