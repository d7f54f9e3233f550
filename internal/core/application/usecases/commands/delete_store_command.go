package commands

import (
	"errors"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/guard"
)

var ErrDeleteStoreCommandIsNotConstructed = errors.New(
	"DeleteStoreCommand must be created via NewDeleteStoreCommand constructor",
)

// DeleteStoreCommand represents a request to soft-delete a store. The record
// stays in storage with a deletion stamp and disappears from every search.
type DeleteStoreCommand struct { //nolint:recvcheck //using for validation
	storeID   kernel.UUID
	deletedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStoreCommand creates a command to soft-delete a store,
// recording who requested the deletion.
func NewDeleteStoreCommand(storeID, deletedBy kernel.UUID) (DeleteStoreCommand, error) {
	cmd := DeleteStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setDeletedBy(deletedBy),
	); err != nil {
		return DeleteStoreCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStoreCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStoreCommandIsNotConstructed)
}

// StoreID returns the identifier of the store to delete.
func (c DeleteStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// DeletedBy returns who requested the deletion.
func (c DeleteStoreCommand) DeletedBy() kernel.UUID {
	return c.deletedBy
}

func (c *DeleteStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *DeleteStoreCommand) setDeletedBy(deletedBy kernel.UUID) error {
	if err := deletedBy.Validate(); err != nil {
		return err
	}

	c.deletedBy = deletedBy
	return nil
}
