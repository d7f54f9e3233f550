package order

import (
	"errors"
	"fmt"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/errs"
	"bestcat/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line entry of an order: a menu item reference, a quantity, and
// the price captured at order time. Items are value-like and owned
// exclusively by their Order; they have no lifecycle of their own and are
// persisted and removed only together with the owning aggregate.
//
// The price is a snapshot in minor currency units so that later menu price
// changes never alter an already placed order.
type Item struct { //nolint:recvcheck //using for validation
	menuID   kernel.UUID
	quantity int
	price    int

	guard guard.ConstructorGuard
}

// NewItem creates an order line for the given menu item.
// Quantity must be positive; price is the per-unit amount captured at order
// time and must not be negative.
func NewItem(menuID kernel.UUID, quantity, price int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuID(menuID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuID returns the identifier of the referenced menu item.
func (i Item) MenuID() kernel.UUID {
	return i.menuID
}

// Quantity returns how many units of the menu item were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the per-unit price snapshot taken at order time,
// in minor currency units.
func (i Item) Price() int {
	return i.price
}

func (i *Item) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	i.menuID = menuID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}
