package errs

import "errors"

// Sentinel errors shared by the commands and queries layers
var (
	// Lookup errors
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrCancellationRequestNotFound = errors.New("cancellation request not found")
	ErrProposalNotFound            = errors.New("appointment proposal not found")
	ErrClientNotFound              = errors.New("client not found")
	ErrServiceNotFound             = errors.New("service not found")

	// Idempotency errors
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
