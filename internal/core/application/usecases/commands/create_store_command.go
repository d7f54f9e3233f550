package commands

import (
	"errors"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/guard"
)

var (
	ErrCreateStoreCommandIsNotConstructed = errors.New(
		"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateStoreCommand represents a request to register a new store in an area.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID     kernel.UUID
	ownerID     kernel.UUID
	areaID      kernel.UUID
	name        string
	address     string
	categoryIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to register a store.
// Validates identifiers and requires a non-empty name and address.
func NewCreateStoreCommand(
	storeID kernel.UUID,
	ownerID kernel.UUID,
	areaID kernel.UUID,
	name string,
	address string,
	categoryIDs []kernel.UUID,
) (CreateStoreCommand, error) {
	cmd := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setOwnerID(ownerID),
		cmd.setAreaID(areaID),
		cmd.setName(name),
		cmd.setAddress(address),
		cmd.setCategoryIDs(categoryIDs),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// StoreID returns the unique identifier for the new store.
func (c CreateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// OwnerID returns the identifier of the owning user.
func (c CreateStoreCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// AreaID returns the identifier of the area the store serves.
func (c CreateStoreCommand) AreaID() kernel.UUID {
	return c.areaID
}

// Name returns the store's display name.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// Address returns the store's street address.
func (c CreateStoreCommand) Address() string {
	return c.address
}

// CategoryIDs returns the category identifiers to register the store under.
func (c CreateStoreCommand) CategoryIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.categoryIDs))
	copy(ids, c.categoryIDs)
	return ids
}

func (c *CreateStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *CreateStoreCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateStoreCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStoreCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateStoreCommand) setCategoryIDs(categoryIDs []kernel.UUID) error {
	for _, id := range categoryIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.categoryIDs = make([]kernel.UUID, len(categoryIDs))
	copy(c.categoryIDs, categoryIDs)
	return nil
}
