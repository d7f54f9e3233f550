package commands

import (
	"errors"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/order"
	"bestcat/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
	ErrItemsAreRequired  = errors.New("at least one order item is required")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// ItemInput describes one requested order line: which menu item and how many
// units. Prices are not part of the input; the handler snapshots them from
// the menu at order time.
type ItemInput struct {
	MenuID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a request to place a new order with a store.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), userID, storeID,
//	    order.Delivery, "123 Main Street", "no onions",
//	    []commands.ItemInput{{MenuID: menuID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	userID       kernel.UUID
	storeID      kernel.UUID
	orderType    order.Type
	address      string
	requestNotes string
	items        []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that all identifiers are constructed, the order type is known,
// the address is not empty, and at least one item with a positive quantity
// is requested. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	storeID kernel.UUID,
	orderType order.Type,
	address string,
	requestNotes string,
	items []ItemInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		requestNotes: requestNotes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setStoreID(storeID),
		orderCommand.setOrderType(orderType),
		orderCommand.setAddress(address),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the ordering customer.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// StoreID returns the identifier of the store the order is placed with.
func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// OrderType returns how the order is fulfilled (delivery or pickup).
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Address returns the delivery destination address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// RequestNotes returns the customer's free-text notes, possibly empty.
func (c CreateOrderCommand) RequestNotes() string {
	return c.requestNotes
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemInput {
	items := make([]ItemInput, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.MenuID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = make([]ItemInput, len(items))
	copy(c.items, items)
	return nil
}
