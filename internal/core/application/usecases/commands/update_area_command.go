package commands

import (
	"errors"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/guard"
)

var ErrUpdateAreaCommandIsNotConstructed = errors.New(
	"UpdateAreaCommand must be created via NewUpdateAreaCommand constructor",
)

// UpdateAreaCommand represents a request to replace an area's city and name.
// Soft-deleted areas reject updates.
type UpdateAreaCommand struct { //nolint:recvcheck //using for validation
	areaID kernel.UUID
	city   string
	name   string

	guard guard.ConstructorGuard
}

// NewUpdateAreaCommand creates a command to update an area.
func NewUpdateAreaCommand(areaID kernel.UUID, city, name string) (UpdateAreaCommand, error) {
	cmd := UpdateAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAreaID(areaID),
		cmd.setCity(city),
		cmd.setName(name),
	); err != nil {
		return UpdateAreaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAreaCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAreaCommandIsNotConstructed)
}

// AreaID returns the identifier of the area to update.
func (c UpdateAreaCommand) AreaID() kernel.UUID {
	return c.areaID
}

// City returns the new city.
func (c UpdateAreaCommand) City() string {
	return c.city
}

// Name returns the new district name.
func (c UpdateAreaCommand) Name() string {
	return c.name
}

func (c *UpdateAreaCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}

func (c *UpdateAreaCommand) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}

	c.city = city
	return nil
}

func (c *UpdateAreaCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
