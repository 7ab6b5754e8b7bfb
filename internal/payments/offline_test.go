package payments

import (
	"context"
	"testing"
)

func TestOfflineProcessor_Charge(t *testing.T) {
	p := NewOfflineProcessor(nil)
	customer := CustomerData{Name: "John Doe", ContactInfo: ContactInfo{Email: "example@mail.com"}}
	payment := PaymentData{Amount: 500, Source: "tok_mastercard"}

	first, err := p.Charge(context.Background(), customer, payment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Status != StatusOfflineProcessed {
		t.Fatalf("expected offline_processed status, got %s", first.Status)
	}
	if first.Amount != 500 {
		t.Fatalf("expected request amount, got %d", first.Amount)
	}
	if first.TransactionID == "" {
		t.Fatal("expected a generated transaction id")
	}

	second, err := p.Charge(context.Background(), customer, payment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.TransactionID == first.TransactionID {
		t.Fatalf("expected distinct transaction ids across calls, got %s twice", first.TransactionID)
	}
}
