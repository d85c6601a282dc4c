package pickup

import (
	"errors"
	"fmt"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request is the aggregate root recording a volunteer's claim on a
// donation. It is tracked independently of the donation's own status; the
// coordinator keeps the two in step.
//
// At most one non-terminal request may exist per donation at a time. That
// invariant is enforced by the coordinator and backed by a partial unique
// index in the persistence layer.
type Request struct {
	id          kernel.UUID
	donationID  kernel.UUID
	volunteerID kernel.UUID

	status      Status
	requestedAt time.Time
	acceptedAt  *time.Time
	startedAt   *time.Time
	completedAt *time.Time

	notes             string
	distance          float64
	estimatedDuration int

	version int

	isConstructed bool
}

// NewRequest creates a pickup request in Pending status.
func NewRequest(
	id kernel.UUID,
	donationID kernel.UUID,
	volunteerID kernel.UUID,
	notes string,
	requestedAt time.Time,
) (*Request, error) {
	r := &Request{
		status:        Pending,
		notes:         notes,
		requestedAt:   requestedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setDonationID(donationID),
		r.setVolunteerID(volunteerID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest rehydrates a pickup request from persistence.
func RestoreRequest(
	id kernel.UUID,
	donationID kernel.UUID,
	volunteerID kernel.UUID,
	status Status,
	requestedAt time.Time,
	acceptedAt *time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	notes string,
	distance float64,
	estimatedDuration int,
	version int,
) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		donationID.Validate(),
		volunteerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("pickup request version")
	}

	return &Request{
		id:                id,
		donationID:        donationID,
		volunteerID:       volunteerID,
		status:            status,
		requestedAt:       requestedAt,
		acceptedAt:        acceptedAt,
		startedAt:         startedAt,
		completedAt:       completedAt,
		notes:             notes,
		distance:          distance,
		estimatedDuration: estimatedDuration,
		version:           version,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Request was created through a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares requests by identifier.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// DonationID returns the claimed donation's identifier.
func (r *Request) DonationID() kernel.UUID {
	return r.donationID
}

// VolunteerID returns the claiming volunteer's identifier.
func (r *Request) VolunteerID() kernel.UUID {
	return r.volunteerID
}

// Status returns the current lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// RequestedAt returns when the request was raised.
func (r *Request) RequestedAt() time.Time {
	return r.requestedAt
}

// AcceptedAt returns when the request was accepted, or nil.
func (r *Request) AcceptedAt() *time.Time {
	return r.acceptedAt
}

// StartedAt returns when the pickup started, or nil.
func (r *Request) StartedAt() *time.Time {
	return r.startedAt
}

// CompletedAt returns when the pickup completed, or nil.
func (r *Request) CompletedAt() *time.Time {
	return r.completedAt
}

// Notes returns the free-text notes attached to the request.
func (r *Request) Notes() string {
	return r.notes
}

// Distance returns the estimated distance in miles.
func (r *Request) Distance() float64 {
	return r.distance
}

// EstimatedDuration returns the estimated duration in minutes.
func (r *Request) EstimatedDuration() int {
	return r.estimatedDuration
}

// Version returns the optimistic-concurrency token as loaded from storage.
func (r *Request) Version() int {
	return r.version
}

// SetEstimate records the route estimate for the request.
func (r *Request) SetEstimate(distance float64, estimatedDuration int) error {
	if distance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%g is negative", distance))
	}
	if estimatedDuration < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated duration",
			fmt.Errorf("%d is negative", estimatedDuration))
	}
	r.distance = distance
	r.estimatedDuration = estimatedDuration
	return nil
}

// Accept transitions Pending -> Accepted and records the timestamp.
func (r *Request) Accept(now time.Time) error {
	newStatus, err := r.status.Accept()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.acceptedAt = &now
	return nil
}

// Start transitions Accepted -> InProgress and records the timestamp.
func (r *Request) Start(now time.Time) error {
	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.startedAt = &now
	return nil
}

// Complete transitions InProgress -> Completed and records the timestamp.
func (r *Request) Complete(now time.Time) error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.completedAt = &now
	return nil
}

// Cancel withdraws the request from any non-terminal status.
func (r *Request) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("donation id", err)
	}
	r.donationID = id
	return nil
}

func (r *Request) setVolunteerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("volunteer id", err)
	}
	r.volunteerID = id
	return nil
}
