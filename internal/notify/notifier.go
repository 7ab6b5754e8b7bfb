// Package notify delivers payment confirmations to customers over email
// or SMS. Each notifier variant is bound to one channel at construction
// time; adding a channel means adding a variant, not editing existing
// ones.
package notify

import (
	"context"
	"fmt"

	"github.com/lgoenaga/solid-principies/internal/payments"
	"github.com/lgoenaga/solid-principies/pkg/logging"
)

const (
	confirmationSubject = "Payment Confirmation"
	confirmationBody    = "Thank you for your payment."
)

// EmailNotifier sends the payment confirmation by email.
type EmailNotifier struct {
	sender EmailSender
	logger *logging.Logger
}

// NewEmailNotifier creates an email-channel notifier.
func NewEmailNotifier(sender EmailSender, logger *logging.Logger) *EmailNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &EmailNotifier{sender: sender, logger: logger}
}

var _ payments.Notifier = (*EmailNotifier)(nil)

// NotifyPaymentReceived emails the confirmation to the customer's address.
func (n *EmailNotifier) NotifyPaymentReceived(ctx context.Context, customer payments.CustomerData) error {
	msg := EmailMessage{
		To:      customer.ContactInfo.Email,
		ToName:  customer.Name,
		Subject: confirmationSubject,
		Body:    confirmationBody,
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: email confirmation: %w", err)
	}
	n.logger.Info("payment confirmation emailed", "to", customer.ContactInfo.Email)
	return nil
}

// SMSNotifier sends the payment confirmation by SMS.
type SMSNotifier struct {
	sender SMSSender
	logger *logging.Logger
}

// NewSMSNotifier creates an SMS-channel notifier.
func NewSMSNotifier(sender SMSSender, logger *logging.Logger) *SMSNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &SMSNotifier{sender: sender, logger: logger}
}

var _ payments.Notifier = (*SMSNotifier)(nil)

// NotifyPaymentReceived texts the confirmation to the customer's phone.
func (n *SMSNotifier) NotifyPaymentReceived(ctx context.Context, customer payments.CustomerData) error {
	if err := n.sender.SendSMS(ctx, customer.ContactInfo.Phone, confirmationBody); err != nil {
		return fmt.Errorf("notify: sms confirmation: %w", err)
	}
	n.logger.Info("payment confirmation texted", "to", customer.ContactInfo.Phone)
	return nil
}

// ContactNotifier prefers email and falls back to SMS. When neither
// channel is reachable (contact info changed after validation, or the
// validator was skipped) it logs a warning and reports success rather
// than failing the pipeline.
type ContactNotifier struct {
	email  EmailSender
	sms    SMSSender
	logger *logging.Logger
}

// NewContactNotifier creates a notifier that picks whichever channel the
// customer can receive.
func NewContactNotifier(email EmailSender, sms SMSSender, logger *logging.Logger) *ContactNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &ContactNotifier{email: email, sms: sms, logger: logger}
}

var _ payments.Notifier = (*ContactNotifier)(nil)

// NotifyPaymentReceived delivers the confirmation on the first reachable
// channel, or no-ops with a diagnostic when there is none.
func (n *ContactNotifier) NotifyPaymentReceived(ctx context.Context, customer payments.CustomerData) error {
	switch {
	case customer.ContactInfo.Email != "" && n.email != nil:
		msg := EmailMessage{
			To:      customer.ContactInfo.Email,
			ToName:  customer.Name,
			Subject: confirmationSubject,
			Body:    confirmationBody,
		}
		if err := n.email.Send(ctx, msg); err != nil {
			return fmt.Errorf("notify: email confirmation: %w", err)
		}
	case customer.ContactInfo.Phone != "" && n.sms != nil:
		if err := n.sms.SendSMS(ctx, customer.ContactInfo.Phone, confirmationBody); err != nil {
			return fmt.Errorf("notify: sms confirmation: %w", err)
		}
	default:
		n.logger.Warn("no valid contact information for notification", "customer", customer.Name)
	}
	return nil
}
