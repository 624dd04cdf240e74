package domain

import "errors"

// Error kinds returned by the rental engine. Callers match with errors.Is;
// every failure is scoped to the single operation that produced it.
var (
	ErrInvalidPeriod     = errors.New("invalid rental period")
	ErrInvalidRange      = errors.New("end date before start date")
	ErrInvalidTransition = errors.New("status transition not permitted")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyConverted  = errors.New("quotation already converted")
	ErrInvalidAmount     = errors.New("payment amount must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
)
