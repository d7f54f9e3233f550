package commands

import (
	"errors"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/guard"
)

var (
	ErrCreateMenuCommandIsNotConstructed = errors.New(
		"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
	)
	ErrPriceIsInvalid = errors.New("price must not be negative")
)

// CreateMenuCommand represents a request to add an orderable item to a
// store's menu.
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID      kernel.UUID
	storeID     kernel.UUID
	name        string
	price       int
	description string

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand creates a command to add a menu item.
// The price is in minor currency units and must not be negative.
func NewCreateMenuCommand(
	menuID kernel.UUID,
	storeID kernel.UUID,
	name string,
	price int,
	description string,
) (CreateMenuCommand, error) {
	cmd := CreateMenuCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuID(menuID),
		cmd.setStoreID(storeID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

// MenuID returns the unique identifier for the new menu item.
func (c CreateMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

// StoreID returns the identifier of the owning store.
func (c CreateMenuCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the menu item's display name.
func (c CreateMenuCommand) Name() string {
	return c.name
}

// Price returns the price in minor currency units.
func (c CreateMenuCommand) Price() int {
	return c.price
}

// Description returns the free-text description, possibly empty.
func (c CreateMenuCommand) Description() string {
	return c.description
}

func (c *CreateMenuCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}

	c.menuID = menuID
	return nil
}

func (c *CreateMenuCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *CreateMenuCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMenuCommand) setPrice(price int) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
