package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory functions. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// maxAddressLength bounds the delivery address, matching the column width.
const maxAddressLength = 500

// Order is the aggregate root for a customer order. It owns its line items
// and its status, and it is the single consistency unit for both: items and
// status can never disagree, because every mutation goes through a validated
// method on this type.
//
// Order maintains these invariants:
//   - the item list is non-empty from creation onward
//   - items are added only while the order is still Placed
//   - the status moves only along the edges defined by Status.TransitionTo
//   - orders are never removed; cancellation is a status transition
//
// The struct uses private fields to ensure encapsulation; instances must be
// created through NewOrder (or RestoreOrder when rehydrating from storage).
type Order struct {
	id      kernel.UUID
	userID  kernel.UUID
	storeID kernel.UUID

	orderType    Type
	status       Status
	address      string
	requestNotes string

	items []Item

	isConstructed bool
}

// NewOrder creates an Order in the Placed status. This is the only way to
// create a new order, ensuring all business invariants hold from the start.
//
// The item list must contain at least one item and the delivery address must
// not be blank; both violations are reported as invalid-argument errors.
//
// Example:
//
//	item, _ := order.NewItem(menuID, 2, 1250)
//	o, err := order.NewOrder(kernel.NewUUID(), userID, storeID,
//	    order.Delivery, "123 Main St", "leave at the door", []order.Item{item})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	storeID kernel.UUID,
	orderType Type,
	address string,
	requestNotes string,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		requestNotes:  requestNotes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setStoreID(storeID),
		o.setOrderType(orderType),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts any valid status, but it enforces the same
// structural invariants, so corrupt rows surface as errors instead of
// invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	storeID kernel.UUID,
	orderType Type,
	status Status,
	address string,
	requestNotes string,
	items []Item,
) (*Order, error) {
	o, err := NewOrder(id, userID, storeID, orderType, address, requestNotes, items)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct, and should be called when aggregates cross the
// persistence boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the customer who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// StoreID returns the identifier of the store the order was placed with.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// OrderType returns how the order is fulfilled (delivery or pickup).
func (o *Order) OrderType() Type {
	return o.orderType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// RequestNotes returns the customer's free-text notes, possibly empty.
func (o *Order) RequestNotes() string {
	return o.requestNotes
}

// Items returns a copy of the order's line items. The slice is detached from
// the aggregate so callers cannot mutate the item list directly.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a line item to the order.
//
// Items can only be added while the order is still Placed; once the store
// has accepted it (or it reached a terminal status) the item list is frozen
// and AddItem fails with an InvalidStateError.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if o.status != Placed {
		return errs.NewInvalidStateError("add item", o.status.String())
	}

	o.items = append(o.items, item)
	return nil
}

// TransitionTo moves the order to the target status.
//
// The edge is validated by Status.TransitionTo before any state is touched:
// on failure the aggregate is left unchanged, on success the new status is
// the only mutation. Transitioning to the current status is a no-op success.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled. It is shorthand for
// TransitionTo(Cancelled) and follows the same validity rule: cancellation
// succeeds from any non-terminal status.
func (o *Order) Cancel() error {
	return o.TransitionTo(Cancelled)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return fmt.Errorf("store id: %w", err)
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if utf8.RuneCountInString(address) > maxAddressLength {
		return errs.NewValueIsOutOfRangeError("address length",
			utf8.RuneCountInString(address), 1, maxAddressLength)
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
