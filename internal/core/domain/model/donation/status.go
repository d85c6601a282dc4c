package donation

import (
	"foodbridge/internal/pkg/errs"
)

// Status represents the lifecycle state of a food donation. The string
// values are part of the external contract and must not change.
//
// State transitions:
//
//	Available ──> Assigned ──> PickedUp ──> Completed
//	    │  ▲          │
//	    │  └──────────┤ (volunteer cancels)
//	    └─────────────┴──> Expired
//
// Completed and Expired are terminal.
type Status string

const (
	// Available is the initial status of a posted donation.
	Available Status = "Available"

	// Assigned indicates a volunteer has claimed the donation.
	Assigned Status = "Assigned"

	// PickedUp indicates the volunteer has collected the food.
	PickedUp Status = "PickedUp"

	// Completed indicates the donation was delivered. Terminal.
	Completed Status = "Completed"

	// Expired indicates the food passed its expiry date before pickup. Terminal.
	Expired Status = "Expired"
)

// Lifecycle event names used in transition errors.
const (
	eventAssign   = "volunteer accepted"
	eventUnassign = "volunteer cancelled"
	eventPickUp   = "pickup started"
	eventComplete = "delivery confirmed"
	eventExpire   = "expiry check"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Available: {},
		Assigned:  {},
		PickedUp:  {},
		Completed: {},
		Expired:   {},
	}
}

// Validate checks that the Status holds one of the five contract values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("donation status",
			errs.NewValueIsInvalidError(string(s)))
	}
	return nil
}

// String returns the contract string for the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are legal.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Expired
}

// Assign transitions Available -> Assigned.
func (s Status) Assign() (Status, error) {
	if s != Available {
		return "", errs.NewInvalidStateError("donation", s.String(), eventAssign)
	}
	return Assigned, nil
}

// Unassign transitions Assigned or PickedUp -> Available when a
// volunteer cancels before delivery.
func (s Status) Unassign() (Status, error) {
	if s != Assigned && s != PickedUp {
		return "", errs.NewInvalidStateError("donation", s.String(), eventUnassign)
	}
	return Available, nil
}

// PickUp transitions Assigned -> PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return "", errs.NewInvalidStateError("donation", s.String(), eventPickUp)
	}
	return PickedUp, nil
}

// Complete transitions PickedUp -> Completed.
func (s Status) Complete() (Status, error) {
	if s != PickedUp {
		return "", errs.NewInvalidStateError("donation", s.String(), eventComplete)
	}
	return Completed, nil
}

// Expire transitions Available or Assigned -> Expired.
func (s Status) Expire() (Status, error) {
	if s != Available && s != Assigned {
		return "", errs.NewInvalidStateError("donation", s.String(), eventExpire)
	}
	return Expired, nil
}
