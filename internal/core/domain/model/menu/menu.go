// Package menu contains the Menu entity. Menus are referenced entities for
// the order core: order items snapshot a menu's price at order time.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/errs"
)

// ErrMenuIsNotConstructed is returned when a Menu instance was not created
// through the NewMenu factory function.
var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

// Menu is a single orderable item on a store's menu.
type Menu struct {
	id          kernel.UUID
	storeID     kernel.UUID
	name        string
	price       int
	description string

	isConstructed bool
}

// NewMenu creates a Menu with validation. The price is in minor currency
// units and must not be negative.
func NewMenu(id, storeID kernel.UUID, name string, price int, description string) (*Menu, error) {
	m := &Menu{description: description, isConstructed: true}

	if err := errors.Join(
		m.setID(id),
		m.setStoreID(storeID),
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Menu instance was properly constructed.
func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

// ID returns the menu's unique identifier.
func (m *Menu) ID() kernel.UUID { return m.id }

// StoreID returns the identifier of the store the menu belongs to.
func (m *Menu) StoreID() kernel.UUID { return m.storeID }

// Name returns the menu's display name.
func (m *Menu) Name() string { return m.name }

// Price returns the current price in minor currency units.
func (m *Menu) Price() int { return m.price }

// Description returns the menu's free-text description, possibly empty.
func (m *Menu) Description() string { return m.description }

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	m.storeID = storeID
	return nil
}

func (m *Menu) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("menu name")
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu price",
			fmt.Errorf("%d is negative", price))
	}
	m.price = price
	return nil
}
