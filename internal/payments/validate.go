package payments

import (
	"strings"

	"github.com/lgoenaga/solid-principies/pkg/logging"
)

// CustomerValidator checks customer records for structural validity.
// It is pure: the only side effect is a diagnostic log line.
type CustomerValidator struct {
	logger *logging.Logger
}

// NewCustomerValidator creates a customer validator.
func NewCustomerValidator(logger *logging.Logger) *CustomerValidator {
	if logger == nil {
		logger = logging.Default()
	}
	return &CustomerValidator{logger: logger}
}

// ValidateCustomer fails when the name is empty or the customer has
// neither an email address nor a phone number to be notified on.
func (v *CustomerValidator) ValidateCustomer(customer CustomerData) error {
	if strings.TrimSpace(customer.Name) == "" {
		v.logger.Warn("invalid customer data: missing name")
		return &ValidationError{Field: "name", Reason: "missing name"}
	}
	if customer.ContactInfo.Email == "" && customer.ContactInfo.Phone == "" {
		v.logger.Warn("invalid customer data: missing email or phone", "customer", customer.Name)
		return &ValidationError{Field: "contact_info", Reason: "missing email or phone"}
	}
	return nil
}

// PaymentValidator checks charge intents for structural validity.
type PaymentValidator struct {
	logger *logging.Logger
}

// NewPaymentValidator creates a payment validator.
func NewPaymentValidator(logger *logging.Logger) *PaymentValidator {
	if logger == nil {
		logger = logging.Default()
	}
	return &PaymentValidator{logger: logger}
}

// ValidatePayment fails when the amount is not positive or the
// payment-method token is empty.
func (v *PaymentValidator) ValidatePayment(payment PaymentData) error {
	if payment.Amount <= 0 {
		v.logger.Warn("invalid payment data: non-positive amount", "amount", payment.Amount)
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if strings.TrimSpace(payment.Source) == "" {
		v.logger.Warn("invalid payment data: missing source")
		return &ValidationError{Field: "source", Reason: "missing payment source"}
	}
	return nil
}
