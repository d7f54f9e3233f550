package commands

import (
	"context"
)

// UpdateAreaCommandHandler replaces an area's city and district name.
type UpdateAreaCommandHandler struct {
	uowFactory AreaUoWFactory
}

// NewUpdateAreaCommandHandler creates a handler for area updates.
func NewUpdateAreaCommandHandler(uowFactory AreaUoWFactory) UpdateAreaCommandHandler {
	return UpdateAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the area update command.
func (h *UpdateAreaCommandHandler) Handle(ctx context.Context, cmd UpdateAreaCommand) error {
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

	if err = entity.Update(cmd.City(), cmd.Name()); err != nil {
		return err
	}

	if err = areaRepo.Update(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
