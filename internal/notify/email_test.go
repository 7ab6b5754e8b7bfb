package notify

import (
	"context"
	"testing"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "",
		FromEmail: "no-reply@example.com",
	}, nil)

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_DefaultFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "test-key",
		FromEmail: "no-reply@example.com",
	}, nil)

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromName != "Payments" {
		t.Errorf("expected default from name 'Payments', got %q", sender.fromName)
	}
}

func TestSendGridSender_Send_NilClient(t *testing.T) {
	sender := &SendGridSender{}

	err := sender.Send(context.Background(), EmailMessage{
		To:      "recipient@example.com",
		Subject: "Payment Confirmation",
		Body:    "Thank you for your payment.",
	})
	if err == nil {
		t.Fatal("expected error from unconfigured client")
	}
}

func TestNewSESSender_NilWithoutClient(t *testing.T) {
	sender := NewSESSender(nil, SESConfig{FromEmail: "no-reply@example.com"}, nil)
	if sender != nil {
		t.Error("expected nil sender when SES client is missing")
	}
}

func TestSESSender_Send_NilClient(t *testing.T) {
	sender := &SESSender{}

	err := sender.Send(context.Background(), EmailMessage{
		To:      "recipient@example.com",
		Subject: "Payment Confirmation",
		Body:    "Thank you for your payment.",
	})
	if err == nil {
		t.Fatal("expected error from unconfigured client")
	}
}

func TestStubEmailSender_Send(t *testing.T) {
	sender := NewStubEmailSender(nil)
	err := sender.Send(context.Background(), EmailMessage{
		To:      "recipient@example.com",
		Subject: "Payment Confirmation",
		Body:    "Thank you for your payment.",
	})
	if err != nil {
		t.Fatalf("stub sender must not fail: %v", err)
	}
}
