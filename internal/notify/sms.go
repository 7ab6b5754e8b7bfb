package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lgoenaga/solid-principies/pkg/logging"
)

var smsTracer = otel.Tracer("paymentsvc.internal.notify.sms")

// SMSSender sends SMS messages to customers.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// GatewaySMSSender posts SMS messages to an SMS gateway's REST API.
type GatewaySMSSender struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewGatewaySMSSender builds a sender with sane defaults.
func NewGatewaySMSSender(baseURL, apiKey, defaultFrom string, logger *logging.Logger) *GatewaySMSSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &GatewaySMSSender{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		from:    defaultFrom,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

var _ SMSSender = (*GatewaySMSSender)(nil)

type smsPayload struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// SendSMS dispatches a single SMS. Delivery is fire-and-forget: a 2xx
// from the gateway is treated as sent.
func (s *GatewaySMSSender) SendSMS(ctx context.Context, to, body string) error {
	if s.baseURL == "" || s.apiKey == "" {
		return errors.New("notify: sms gateway credentials missing")
	}
	if to == "" {
		return errors.New("notify: sms recipient required")
	}
	if strings.TrimSpace(body) == "" {
		return errors.New("notify: sms body required")
	}

	ctx, span := smsTracer.Start(ctx, "notify.sms.send", trace.WithAttributes(
		attribute.String("sms.to", to),
	))
	defer span.End()

	payload, err := json.Marshal(smsPayload{From: s.from, To: to, Body: body})
	if err != nil {
		return fmt.Errorf("notify: sms marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("notify: sms request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify: sms http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		s.logger.Error("sms gateway rejected message", "status", resp.StatusCode, "body", string(respBody), "to", to)
		return fmt.Errorf("notify: sms gateway status %d", resp.StatusCode)
	}

	s.logger.Info("sms sent", "to", to)
	return nil
}

// StubSMSSender logs the SMS instead of sending it.
type StubSMSSender struct {
	logger *logging.Logger
}

// NewStubSMSSender creates a stub SMS sender.
func NewStubSMSSender(logger *logging.Logger) *StubSMSSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubSMSSender{logger: logger}
}

// SendSMS logs the message but doesn't actually send it.
func (s *StubSMSSender) SendSMS(ctx context.Context, to, body string) error {
	s.logger.Info("stub sms sender: would send sms", "to", to)
	return nil
}
