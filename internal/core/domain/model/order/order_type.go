package order

import (
	"bestcat/internal/pkg/errs"
)

// Type distinguishes how an order is fulfilled.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// Delivery orders are brought to the customer's address.
	Delivery

	// Pickup orders are collected by the customer at the store.
	Pickup
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		Delivery: "DELIVERY",
		Pickup:   "PICKUP",
	}
}

// TypeFromString parses the persisted or transported representation of an
// order type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidError("order type: " + s)
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidError("order type")
	}
	return nil
}

// String returns the wire-format name of the type, or "Unknown" for
// invalid values.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
