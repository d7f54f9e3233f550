package commands

import (
	"context"

	"bestcat/internal/core/domain/model/store"
	"bestcat/internal/pkg/errs"
)

// CreateStoreCommandHandler registers a new store. The referenced area must
// exist and not be soft-deleted.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewCreateStoreCommandHandler creates a handler for store registration.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store registration command.
func (h *CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) error {
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

	areaEntity, err := uow.AreaRepository().Get(ctx, cmd.AreaID())
	if err != nil {
		return err
	}
	if areaEntity.IsDeleted() {
		return errs.NewObjectNotFoundError("area", cmd.AreaID().String())
	}

	entity, err := store.NewStore(
		cmd.StoreID(),
		cmd.OwnerID(),
		cmd.AreaID(),
		cmd.Name(),
		cmd.Address(),
		cmd.CategoryIDs(),
	)
	if err != nil {
		return err
	}

	if err = uow.StoreRepository().Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
