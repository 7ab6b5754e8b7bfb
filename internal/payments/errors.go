package payments

import (
	"errors"
	"fmt"
)

var (
	// ErrRefundNotSupported is returned when a refund is requested on a
	// service composed without a refund processor.
	ErrRefundNotSupported = errors.New("payments: refund processor not configured")
	// ErrRecurrenceNotSupported is returned when recurrence setup is
	// requested on a service composed without a recurrence processor.
	ErrRecurrenceNotSupported = errors.New("payments: recurrence processor not configured")
)

// ValidationError reports a structural problem in request data. It is
// always raised before any external effect.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("payments: invalid %s: %s", e.Field, e.Reason)
}

// GatewayError is a failure reported by the external payment network.
// Processors catch it and convert it into a failed PaymentResponse; it
// never escapes the facade's main pipeline.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("payments: gateway status %d: %s", e.StatusCode, e.Message)
	}
	return "payments: gateway: " + e.Message
}
