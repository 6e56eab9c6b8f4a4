package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrInstrumentNotFound   = errors.New("instrument_not_found")
	ErrOrderNotFound        = errors.New("order_not_found")
	ErrInsufficientHoldings = errors.New("insufficient_holdings")
	ErrOrderNotExecutable   = errors.New("order_not_executable")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
