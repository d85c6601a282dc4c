package commands

import (
	"errors"
	"time"

	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrExpireDonationsCommandIsNotConstructed = errors.New(
	"ExpireDonationsCommand must be created via NewExpireDonationsCommand constructor",
)

// ExpireDonationsCommand triggers the sweep that expires overdue
// donations. The sweep time is supplied by the caller so re-running with
// the same instant is a no-op.
type ExpireDonationsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireDonationsCommand creates a command to run the expiry sweep as
// of the given instant.
func NewExpireDonationsCommand(now time.Time) (ExpireDonationsCommand, error) {
	if now.IsZero() {
		return ExpireDonationsCommand{}, errs.NewValueIsRequiredError("sweep time")
	}

	return ExpireDonationsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireDonationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireDonationsCommandIsNotConstructed)
}

// Now returns the instant the sweep evaluates expiry dates against.
func (c ExpireDonationsCommand) Now() time.Time {
	return c.now
}
