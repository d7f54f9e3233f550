package commands

import (
	"errors"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/guard"
)

var ErrDeleteAreaCommandIsNotConstructed = errors.New(
	"DeleteAreaCommand must be created via NewDeleteAreaCommand constructor",
)

// DeleteAreaCommand represents a request to soft-delete an area.
type DeleteAreaCommand struct { //nolint:recvcheck //using for validation
	areaID    kernel.UUID
	deletedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAreaCommand creates a command to soft-delete an area,
// recording who requested the deletion.
func NewDeleteAreaCommand(areaID, deletedBy kernel.UUID) (DeleteAreaCommand, error) {
	cmd := DeleteAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAreaID(areaID),
		cmd.setDeletedBy(deletedBy),
	); err != nil {
		return DeleteAreaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAreaCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAreaCommandIsNotConstructed)
}

// AreaID returns the identifier of the area to delete.
func (c DeleteAreaCommand) AreaID() kernel.UUID {
	return c.areaID
}

// DeletedBy returns who requested the deletion.
func (c DeleteAreaCommand) DeletedBy() kernel.UUID {
	return c.deletedBy
}

func (c *DeleteAreaCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}

func (c *DeleteAreaCommand) setDeletedBy(deletedBy kernel.UUID) error {
	if err := deletedBy.Validate(); err != nil {
		return err
	}

	c.deletedBy = deletedBy
	return nil
}
