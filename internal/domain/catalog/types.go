package catalog

import "salon-scheduler/internal/pkg/errs"

var (
	ErrEmptyClientName  = errs.New("client name cannot be empty")
	ErrMissingContact   = errs.New("client needs a phone number or an email")
	ErrEmptyServiceName = errs.New("service name cannot be empty")
	ErrNegativePrice    = errs.New("service price cannot be negative")
)
