package commands

import (
	"context"
)

// DeleteAreaCommandHandler soft-deletes an area. Stores already registered
// in the area keep their reference; only searches stop returning the area.
type DeleteAreaCommandHandler struct {
	uowFactory AreaUoWFactory
}

// NewDeleteAreaCommandHandler creates a handler for area deletion.
func NewDeleteAreaCommandHandler(uowFactory AreaUoWFactory) DeleteAreaCommandHandler {
	return DeleteAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the area deletion command. Repeating the deletion is a
// no-op success.
func (h *DeleteAreaCommandHandler) Handle(ctx context.Context, cmd DeleteAreaCommand) error {
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

	areaRepo := uow.AreaRepository()
	entity, err := areaRepo.Get(ctx, cmd.AreaID())
	if err != nil {
		return err
	}

	if err = entity.Delete(cmd.DeletedBy()); err != nil {
		return err
	}

	if err = areaRepo.Update(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
