package commands

import (
	"context"

	"bestcat/internal/core/domain/model/area"
)

// CreateAreaCommandHandler registers a new delivery area.
type CreateAreaCommandHandler struct {
	uowFactory AreaUoWFactory
}

// NewCreateAreaCommandHandler creates a handler for area registration.
func NewCreateAreaCommandHandler(uowFactory AreaUoWFactory) CreateAreaCommandHandler {
	return CreateAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the area registration command.
func (h *CreateAreaCommandHandler) Handle(ctx context.Context, cmd CreateAreaCommand) error {
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

	entity, err := area.NewArea(cmd.AreaID(), cmd.City(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.AreaRepository().Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
