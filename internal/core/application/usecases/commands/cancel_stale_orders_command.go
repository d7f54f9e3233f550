package commands

import (
	"errors"
	"time"

	"bestcat/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// CancelStaleOrdersCommand represents a request to cancel every order that
// is still in Placed status and was created before the cutoff. Issued by the
// background job that sweeps orders no store ever accepted.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale orders.
// The cutoff must not be the zero time.
func NewCancelStaleOrdersCommand(cutoff time.Time) (CancelStaleOrdersCommand, error) {
	cmd := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the creation-time threshold; orders placed before it are
// cancelled.
func (c CancelStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *CancelStaleOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
