package pickup

import (
	"foodbridge/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup request. The string
// values are part of the external contract and must not change.
//
// State transitions:
//
//	Pending ──> Accepted ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Completed and Cancelled are terminal.
type Status string

const (
	// Pending is the initial status of a raised request.
	Pending Status = "Pending"

	// Accepted indicates the request was confirmed.
	Accepted Status = "Accepted"

	// InProgress indicates the volunteer is carrying out the pickup.
	InProgress Status = "InProgress"

	// Completed indicates the pickup finished. Terminal.
	Completed Status = "Completed"

	// Cancelled indicates the request was withdrawn. Terminal.
	Cancelled Status = "Cancelled"
)

const (
	eventAccept   = "accept"
	eventStart    = "start"
	eventComplete = "complete"
	eventCancel   = "cancel"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:    {},
		Accepted:   {},
		InProgress: {},
		Completed:  {},
		Cancelled:  {},
	}
}

// Validate checks that the Status holds one of the five contract values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pickup request status",
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
	return s == Completed || s == Cancelled
}

// Accept transitions Pending -> Accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return "", errs.NewInvalidStateError("pickup request", s.String(), eventAccept)
	}
	return Accepted, nil
}

// Start transitions Accepted -> InProgress.
func (s Status) Start() (Status, error) {
	if s != Accepted {
		return "", errs.NewInvalidStateError("pickup request", s.String(), eventStart)
	}
	return InProgress, nil
}

// Complete transitions InProgress -> Completed.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return "", errs.NewInvalidStateError("pickup request", s.String(), eventComplete)
	}
	return Completed, nil
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return "", errs.NewInvalidStateError("pickup request", s.String(), eventCancel)
	}
	if err := s.Validate(); err != nil {
		return "", err
	}
	return Cancelled, nil
}
