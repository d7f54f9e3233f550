package order

import (
	"bestcat/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Placed ──> Accepted ──> InProgress ──> Delivered
//	   │           │            │
//	   └───────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no further transition is permitted
// from either. A transition to the status an order already holds is a no-op
// success, so repeated delivery of the same status-change request is safe.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when an order is first created.
	// Items may only be added while the order is in this status.
	Placed

	// Accepted indicates the store has accepted the order.
	Accepted

	// InProgress indicates the order is being prepared or is out for delivery.
	InProgress

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled. Terminal.
	// Cancellation is reachable from any non-terminal status.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Placed:     "PLACED",
		Accepted:   "ACCEPTED",
		InProgress: "IN_PROGRESS",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:     "PLACED",
		Accepted:   "ACCEPTED",
		InProgress: "IN_PROGRESS",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// forwardEdges returns the single permitted forward transition per status.
// Cancellation is handled separately since it is reachable from any
// non-terminal status.
func forwardEdges() map[Status]Status {
	return map[Status]Status{
		Placed:     Accepted,
		Accepted:   InProgress,
		InProgress: Delivered,
	}
}

// StatusFromString parses the persisted or transported representation of a
// status. Returns an error for anything outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status: " + s)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire-format name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is permitted from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates the edge from s to target and returns the resulting
// status.
//
// Valid transitions:
//   - the single forward edge for the current status
//     (Placed->Accepted, Accepted->InProgress, InProgress->Delivered)
//   - any non-terminal status -> Cancelled
//   - s -> s, which succeeds without effect
//
// Everything else fails with an InvalidTransitionError, including any
// transition out of Delivered or Cancelled and skipping forward edges
// such as Placed->Delivered.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	if target == s {
		return s, nil
	}

	if target == Cancelled && !s.IsTerminal() {
		return Cancelled, nil
	}

	if next, ok := forwardEdges()[s]; ok && next == target {
		return target, nil
	}

	return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
}
