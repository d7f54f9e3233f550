package commands

import (
	"errors"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/guard"
)

var ErrUpdateStoreCommandIsNotConstructed = errors.New(
	"UpdateStoreCommand must be created via NewUpdateStoreCommand constructor",
)

// UpdateStoreCommand represents a request to replace a store's mutable
// attributes. Soft-deleted stores reject updates.
type UpdateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID     kernel.UUID
	areaID      kernel.UUID
	name        string
	address     string
	categoryIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateStoreCommand creates a command to update a store.
func NewUpdateStoreCommand(
	storeID kernel.UUID,
	areaID kernel.UUID,
	name string,
	address string,
	categoryIDs []kernel.UUID,
) (UpdateStoreCommand, error) {
	cmd := UpdateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setAreaID(areaID),
		cmd.setName(name),
		cmd.setAddress(address),
		cmd.setCategoryIDs(categoryIDs),
	); err != nil {
		return UpdateStoreCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStoreCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreCommandIsNotConstructed)
}

// StoreID returns the identifier of the store to update.
func (c UpdateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// AreaID returns the identifier of the area the store should serve.
func (c UpdateStoreCommand) AreaID() kernel.UUID {
	return c.areaID
}

// Name returns the new display name.
func (c UpdateStoreCommand) Name() string {
	return c.name
}

// Address returns the new street address.
func (c UpdateStoreCommand) Address() string {
	return c.address
}

// CategoryIDs returns the new category identifiers.
func (c UpdateStoreCommand) CategoryIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.categoryIDs))
	copy(ids, c.categoryIDs)
	return ids
}

func (c *UpdateStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *UpdateStoreCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}

func (c *UpdateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateStoreCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *UpdateStoreCommand) setCategoryIDs(categoryIDs []kernel.UUID) error {
	for _, id := range categoryIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.categoryIDs = make([]kernel.UUID, len(categoryIDs))
	copy(c.categoryIDs, categoryIDs)
	return nil
}
