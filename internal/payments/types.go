// Package payments implements the payment processing pipeline: input
// validation, charging through a gateway, customer notification, and
// transaction logging, composed behind a single Service facade.
package payments

// Status enumerates the terminal states a payment operation can report.
type Status string

const (
	// StatusSucceeded is a completed one-time charge.
	StatusSucceeded Status = "succeeded"
	// StatusFailed is a charge the gateway rejected.
	StatusFailed Status = "failed"
	// StatusRefunded is a reversed charge.
	StatusRefunded Status = "refunded"
	// StatusRecurrenceActive is a live subscription.
	StatusRecurrenceActive Status = "active"
	// StatusRecurrenceFailed is a subscription the gateway rejected.
	StatusRecurrenceFailed Status = "recurrence_failed"
	// StatusOfflineProcessed is a charge accepted by the offline fallback.
	StatusOfflineProcessed Status = "offline_processed"
)

// ContactInfo carries the channels a customer can be reached on. Both
// fields are optional; the validator requires at least one to be set.
type ContactInfo struct {
	Email string
	Phone string
}

// CustomerData identifies the paying customer for a single request.
type CustomerData struct {
	Name        string
	ContactInfo ContactInfo
	// ID is the gateway-assigned customer identifier, populated after the
	// first successful charge or recurrence setup.
	ID string
}

// PaymentData is a single charge intent. Amount is in the smallest
// currency unit (cents); Source is an opaque payment-method token.
type PaymentData struct {
	Amount int64
	Source string
}

// PaymentResponse is the outcome of one pipeline invocation. Ownership
// transfers to the caller; the service keeps no copy.
type PaymentResponse struct {
	Status        Status
	Amount        int64
	TransactionID string
	Message       string
}
