// Package errs provides standardized error types for the foodbridge
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The taxonomy covers validation failures (ValueIsRequired, ValueIsInvalid,
// ValueIsOutOfRange), missing objects (ObjectNotFound), illegal lifecycle
// transitions (InvalidState), business-rule conflicts (Conflict), lost
// optimistic-concurrency updates (ConcurrencyConflict), and deletes that
// would dangle a required reference (ReferentialIntegrity). The transport
// layer maps these sentinels onto HTTP status codes; the core never
// retries or swallows them.
package errs
