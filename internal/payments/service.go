package payments

import (
	"context"
	"time"

	"github.com/lgoenaga/solid-principies/internal/observability/metrics"
	"github.com/lgoenaga/solid-principies/pkg/logging"
)

// Service is the payment facade. Each call runs the full pipeline
// (validate, charge, notify, log) to completion; no state survives
// between calls. Collaborators are fixed at construction time and any
// implementation honoring the capability contracts is interchangeable.
type Service struct {
	customerValidator *CustomerValidator
	paymentValidator  *PaymentValidator
	charger           ChargeProcessor
	notifier          Notifier
	txlog             TransactionLogger
	refunder          RefundProcessor
	recurrence        RecurrenceProcessor
	metrics           *metrics.PaymentMetrics
	logger            *logging.Logger
}

// Option customizes a Service at construction time.
type Option func(*Service)

// WithNotifier sets the confirmation channel for processed payments.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithTransactionLogger sets the durable transaction sink.
func WithTransactionLogger(l TransactionLogger) Option {
	return func(s *Service) { s.txlog = l }
}

// WithRefundProcessor enables the refund capability.
func WithRefundProcessor(p RefundProcessor) Option {
	return func(s *Service) { s.refunder = p }
}

// WithRecurrenceProcessor enables the recurring-billing capability.
func WithRecurrenceProcessor(p RecurrenceProcessor) Option {
	return func(s *Service) { s.recurrence = p }
}

// WithMetrics attaches pipeline metrics.
func WithMetrics(m *metrics.PaymentMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService composes a payment service around the given charge
// processor. Without options the service has no notifier, no transaction
// sink, and no refund or recurrence capability; the usual composition
// (Stripe charger, email notifier, file ledger) lives in the bootstrap
// package.
func NewService(charger ChargeProcessor, logger *logging.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Service{
		customerValidator: NewCustomerValidator(logger),
		paymentValidator:  NewPaymentValidator(logger),
		charger:           charger,
		logger:            logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessPayment runs the one-time payment pipeline: validate both
// inputs, charge, notify, log, return the processor's response. Gateway
// rejections come back as a failed response with a nil error; anything
// unexpected is logged and returned to the caller.
func (s *Service) ProcessPayment(ctx context.Context, payment PaymentData, customer CustomerData) (PaymentResponse, error) {
	if err := s.customerValidator.ValidateCustomer(customer); err != nil {
		s.metrics.ObserveOperation("charge", "invalid")
		return PaymentResponse{}, err
	}
	if err := s.paymentValidator.ValidatePayment(payment); err != nil {
		s.metrics.ObserveOperation("charge", "invalid")
		return PaymentResponse{}, err
	}

	start := time.Now()
	resp, err := s.charger.Charge(ctx, customer, payment)
	s.metrics.ObserveGatewayLatency("charge", time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("error processing payment", "customer", customer.Name, "error", err)
		s.metrics.ObserveOperation("charge", "error")
		return PaymentResponse{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyPaymentReceived(ctx, customer); err != nil {
			s.logger.Error("error processing payment", "stage", "notify", "customer", customer.Name, "error", err)
			s.metrics.ObserveOperation("charge", "error")
			return PaymentResponse{}, err
		}
	}

	if s.txlog != nil {
		if err := s.txlog.LogTransaction(customer, payment, resp); err != nil {
			s.logger.Error("error processing payment", "stage", "log", "customer", customer.Name, "error", err)
			s.metrics.ObserveOperation("charge", "error")
			return PaymentResponse{}, err
		}
	}

	s.metrics.ObserveOperation("charge", string(resp.Status))
	return resp, nil
}

// RefundPayment reverses a completed transaction. It fails with
// ErrRefundNotSupported when the service was composed without a refund
// processor.
func (s *Service) RefundPayment(ctx context.Context, transactionID string) (PaymentResponse, error) {
	if s.refunder == nil {
		s.metrics.ObserveOperation("refund", "unsupported")
		return PaymentResponse{}, ErrRefundNotSupported
	}

	start := time.Now()
	resp, err := s.refunder.Refund(ctx, transactionID)
	s.metrics.ObserveGatewayLatency("refund", time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("error refunding payment", "transaction_id", transactionID, "error", err)
		s.metrics.ObserveOperation("refund", "error")
		return PaymentResponse{}, err
	}

	// No customer or payment is in scope for a refund; the record is
	// synthesized from the response so the sink format stays uniform.
	if s.txlog != nil {
		if err := s.txlog.LogTransaction(CustomerData{}, PaymentData{}, resp); err != nil {
			s.logger.Error("error refunding payment", "stage", "log", "transaction_id", transactionID, "error", err)
			s.metrics.ObserveOperation("refund", "error")
			return PaymentResponse{}, err
		}
	}

	s.metrics.ObserveOperation("refund", string(resp.Status))
	return resp, nil
}

// SetupRecurrencePayment starts recurring billing for the customer. It
// fails with ErrRecurrenceNotSupported when the service was composed
// without a recurrence processor. The response amount is the
// subscription's unit price, not the requested amount.
func (s *Service) SetupRecurrencePayment(ctx context.Context, payment PaymentData, customer CustomerData) (PaymentResponse, error) {
	if s.recurrence == nil {
		s.metrics.ObserveOperation("recurrence", "unsupported")
		return PaymentResponse{}, ErrRecurrenceNotSupported
	}

	start := time.Now()
	resp, err := s.recurrence.SetupRecurrence(ctx, customer, payment)
	s.metrics.ObserveGatewayLatency("recurrence", time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("error setting up recurrence", "customer", customer.Name, "error", err)
		s.metrics.ObserveOperation("recurrence", "error")
		return PaymentResponse{}, err
	}

	if s.txlog != nil {
		if err := s.txlog.LogTransaction(customer, payment, resp); err != nil {
			s.logger.Error("error setting up recurrence", "stage", "log", "customer", customer.Name, "error", err)
			s.metrics.ObserveOperation("recurrence", "error")
			return PaymentResponse{}, err
		}
	}

	s.metrics.ObserveOperation("recurrence", string(resp.Status))
	return resp, nil
}
