package payments

import "context"

// ChargeProcessor performs a single monetary transaction. Gateway-level
// failures (card decline, network rejection) are reported through the
// returned PaymentResponse with StatusFailed and a nil error, so callers
// can continue to notify and log; only programming errors propagate.
type ChargeProcessor interface {
	Charge(ctx context.Context, customer CustomerData, payment PaymentData) (PaymentResponse, error)
}

// RefundProcessor reverses a previously completed transaction.
type RefundProcessor interface {
	Refund(ctx context.Context, transactionID string) (PaymentResponse, error)
}

// RecurrenceProcessor sets up recurring billing for a customer.
type RecurrenceProcessor interface {
	SetupRecurrence(ctx context.Context, customer CustomerData, payment PaymentData) (PaymentResponse, error)
}

// Notifier sends a payment confirmation to the customer over whatever
// channel the implementation was built for.
type Notifier interface {
	NotifyPaymentReceived(ctx context.Context, customer CustomerData) error
}

// TransactionLogger appends one record of a completed transaction to a
// durable sink. Write failures propagate.
type TransactionLogger interface {
	LogTransaction(customer CustomerData, payment PaymentData, resp PaymentResponse) error
}
