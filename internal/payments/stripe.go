package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lgoenaga/solid-principies/pkg/logging"
)

var stripeTracer = otel.Tracer("paymentsvc.internal.payments.stripe")

// StripeProcessor charges, refunds, and sets up subscriptions against the
// Stripe API. Gateway rejections are contained: they come back as a failed
// PaymentResponse, never as an error from Charge or SetupRecurrence.
type StripeProcessor struct {
	secretKey  string
	priceID    string
	currency   string
	baseURL    string
	apiVersion string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewStripeProcessor creates a Stripe-backed processor. priceID is the
// recurring price used by SetupRecurrence; it may be empty when the
// processor is only used for one-time charges.
func NewStripeProcessor(secretKey, priceID string, logger *logging.Logger) *StripeProcessor {
	if logger == nil {
		logger = logging.Default()
	}
	return &StripeProcessor{
		secretKey:  secretKey,
		priceID:    priceID,
		currency:   "usd",
		baseURL:    "https://api.stripe.com",
		apiVersion: "2024-12-18.acacia",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// WithBaseURL overrides the Stripe API base URL (for testing).
func (p *StripeProcessor) WithBaseURL(baseURL string) *StripeProcessor {
	if baseURL != "" {
		p.baseURL = strings.TrimRight(baseURL, "/")
	}
	return p
}

// WithCurrency overrides the charge currency (defaults to usd).
func (p *StripeProcessor) WithCurrency(currency string) *StripeProcessor {
	if currency != "" {
		p.currency = strings.ToLower(currency)
	}
	return p
}

var (
	_ ChargeProcessor     = (*StripeProcessor)(nil)
	_ RefundProcessor     = (*StripeProcessor)(nil)
	_ RecurrenceProcessor = (*StripeProcessor)(nil)
)

// Charge creates a one-time charge for the customer's payment source.
func (p *StripeProcessor) Charge(ctx context.Context, customer CustomerData, payment PaymentData) (PaymentResponse, error) {
	ctx, span := stripeTracer.Start(ctx, "stripe.create_charge", trace.WithAttributes(
		attribute.String("payments.customer", customer.Name),
		attribute.Int64("payments.amount_cents", payment.Amount),
	))
	defer span.End()

	form := url.Values{}
	form.Set("amount", fmt.Sprintf("%d", payment.Amount))
	form.Set("currency", p.currency)
	form.Set("source", payment.Source)
	form.Set("description", "Charge for "+customer.Name)

	var charge stripeCharge
	if err := p.postForm(ctx, "/v1/charges", form, &charge); err != nil {
		var gwErr *GatewayError
		if errors.As(err, &gwErr) {
			p.logger.Warn("stripe charge rejected", "customer", customer.Name, "error", gwErr.Message)
			return PaymentResponse{Status: StatusFailed, Amount: 0, Message: gwErr.Message}, nil
		}
		return PaymentResponse{}, err
	}

	p.logger.Info("payment successful",
		"charge_id", charge.ID,
		"amount_cents", charge.Amount,
		"status", charge.Status,
	)
	return PaymentResponse{
		Status:        Status(charge.Status),
		Amount:        charge.Amount,
		TransactionID: charge.ID,
		Message:       "Payment successful",
	}, nil
}

// Refund reverses a charge. There is no reversal state machine here: the
// refund is acknowledged immediately with the given transaction id.
func (p *StripeProcessor) Refund(ctx context.Context, transactionID string) (PaymentResponse, error) {
	_, span := stripeTracer.Start(ctx, "stripe.refund_charge", trace.WithAttributes(
		attribute.String("payments.transaction_id", transactionID),
	))
	defer span.End()

	p.logger.Info("refunding payment", "transaction_id", transactionID)
	return PaymentResponse{
		Status:        StatusRefunded,
		Amount:        0,
		TransactionID: transactionID,
		Message:       "Payment refunded successfully",
	}, nil
}

// SetupRecurrence creates a Stripe customer, attaches the payment source
// as the default method, and starts a subscription on the configured
// recurring price. The response amount is the subscription's unit price,
// not the requested amount: subscriptions bill from the price object.
func (p *StripeProcessor) SetupRecurrence(ctx context.Context, customer CustomerData, payment PaymentData) (PaymentResponse, error) {
	ctx, span := stripeTracer.Start(ctx, "stripe.setup_recurrence", trace.WithAttributes(
		attribute.String("payments.customer", customer.Name),
		attribute.String("stripe.price_id", p.priceID),
	))
	defer span.End()

	resp, err := p.setupRecurrence(ctx, customer, payment)
	if err != nil {
		var gwErr *GatewayError
		if errors.As(err, &gwErr) {
			p.logger.Warn("stripe recurrence rejected", "customer", customer.Name, "error", gwErr.Message)
			return PaymentResponse{Status: StatusRecurrenceFailed, Amount: 0, Message: gwErr.Message}, nil
		}
		return PaymentResponse{}, err
	}
	return resp, nil
}

func (p *StripeProcessor) setupRecurrence(ctx context.Context, customer CustomerData, payment PaymentData) (PaymentResponse, error) {
	custForm := url.Values{}
	custForm.Set("email", customer.ContactInfo.Email)
	var stripeCustomer stripeObject
	if err := p.postForm(ctx, "/v1/customers", custForm, &stripeCustomer); err != nil {
		return PaymentResponse{}, err
	}

	attachForm := url.Values{}
	attachForm.Set("customer", stripeCustomer.ID)
	var method stripeObject
	attachPath := "/v1/payment_methods/" + url.PathEscape(payment.Source) + "/attach"
	if err := p.postForm(ctx, attachPath, attachForm, &method); err != nil {
		return PaymentResponse{}, err
	}

	defaultForm := url.Values{}
	defaultForm.Set("invoice_settings[default_payment_method]", method.ID)
	if err := p.postForm(ctx, "/v1/customers/"+url.PathEscape(stripeCustomer.ID), defaultForm, nil); err != nil {
		return PaymentResponse{}, err
	}

	subForm := url.Values{}
	subForm.Set("customer", stripeCustomer.ID)
	subForm.Set("items[0][price]", p.priceID)
	subForm.Set("expand[]", "latest_invoice.payment_intent")
	var sub stripeSubscription
	if err := p.postForm(ctx, "/v1/subscriptions", subForm, &sub); err != nil {
		return PaymentResponse{}, err
	}

	var unitAmount int64
	if len(sub.Items.Data) > 0 {
		unitAmount = sub.Items.Data[0].Price.UnitAmount
	}

	p.logger.Info("recurrence payment successful",
		"subscription_id", sub.ID,
		"stripe_customer_id", stripeCustomer.ID,
		"status", sub.Status,
		"unit_amount_cents", unitAmount,
	)
	return PaymentResponse{
		Status:        Status(sub.Status),
		Amount:        unitAmount,
		TransactionID: sub.ID,
		Message:       "Recurrence payment successful for customer " + stripeCustomer.ID,
	}, nil
}

// postForm sends a form-encoded POST to the Stripe API and decodes the
// response into out when non-nil. Transport failures and non-2xx statuses
// come back as *GatewayError; anything else is a programming error.
func (p *StripeProcessor) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("payments: stripe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Stripe-Version", p.apiVersion)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return &GatewayError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &GatewayError{Message: err.Error()}
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return &GatewayError{StatusCode: resp.StatusCode, Message: stripeErrorMessage(body)}
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("payments: stripe decode: %w", err)
		}
	}
	return nil
}

// stripeErrorMessage extracts the human-readable message from a Stripe
// error payload, falling back to the raw body.
func stripeErrorMessage(body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return string(body)
}

// stripeCharge is the subset of Stripe's Charge object we need.
type stripeCharge struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

// stripeObject covers responses where only the id matters.
type stripeObject struct {
	ID string `json:"id"`
}

// stripeSubscription is the subset of Stripe's Subscription object we need.
type stripeSubscription struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Items  struct {
		Data []struct {
			Price struct {
				UnitAmount int64 `json:"unit_amount"`
			} `json:"price"`
		} `json:"data"`
	} `json:"items"`
}
