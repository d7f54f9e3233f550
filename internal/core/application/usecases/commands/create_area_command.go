package commands

import (
	"errors"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/guard"
)

var (
	ErrCreateAreaCommandIsNotConstructed = errors.New(
		"CreateAreaCommand must be created via NewCreateAreaCommand constructor",
	)
	ErrCityIsRequired = errors.New("city is required")
)

// CreateAreaCommand represents a request to register a new delivery area.
type CreateAreaCommand struct { //nolint:recvcheck //using for validation
	areaID kernel.UUID
	city   string
	name   string

	guard guard.ConstructorGuard
}

// NewCreateAreaCommand creates a command to register an area.
// City and name must not be empty.
func NewCreateAreaCommand(areaID kernel.UUID, city, name string) (CreateAreaCommand, error) {
	cmd := CreateAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAreaID(areaID),
		cmd.setCity(city),
		cmd.setName(name),
	); err != nil {
		return CreateAreaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAreaCommand) Validate() error {
	return c.guard.Validate(ErrCreateAreaCommandIsNotConstructed)
}

// AreaID returns the unique identifier for the new area.
func (c CreateAreaCommand) AreaID() kernel.UUID {
	return c.areaID
}

// City returns the city the area belongs to.
func (c CreateAreaCommand) City() string {
	return c.city
}

// Name returns the area's district name.
func (c CreateAreaCommand) Name() string {
	return c.name
}

func (c *CreateAreaCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}

func (c *CreateAreaCommand) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}

	c.city = city
	return nil
}

func (c *CreateAreaCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
