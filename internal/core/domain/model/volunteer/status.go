package volunteer

import (
	"foodbridge/internal/pkg/errs"
)

// Status represents a volunteer's account standing. The string values are
// part of the external contract.
type Status string

const (
	// Active volunteers may claim donations.
	Active Status = "Active"

	// Inactive volunteers have stepped back and may not claim donations.
	Inactive Status = "Inactive"

	// Suspended volunteers are blocked by an administrator.
	Suspended Status = "Suspended"
)

// Validate checks that the Status holds one of the contract values.
func (s Status) Validate() error {
	switch s {
	case Active, Inactive, Suspended:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("volunteer status",
			errs.NewValueIsInvalidError(string(s)))
	}
}

// String returns the contract string for the status.
func (s Status) String() string {
	return string(s)
}
