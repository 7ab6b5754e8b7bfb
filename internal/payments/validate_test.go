package payments

import (
	"errors"
	"testing"
)

func TestValidateCustomer(t *testing.T) {
	tests := []struct {
		name     string
		customer CustomerData
		wantErr  bool
	}{
		{"email only", CustomerData{Name: "John Doe", ContactInfo: ContactInfo{Email: "example@mail.com"}}, false},
		{"phone only", CustomerData{Name: "Jane Smith", ContactInfo: ContactInfo{Phone: "1234567890"}}, false},
		{"both channels", CustomerData{Name: "John Doe", ContactInfo: ContactInfo{Email: "example@mail.com", Phone: "1234567890"}}, false},
		{"missing name", CustomerData{ContactInfo: ContactInfo{Email: "example@mail.com"}}, true},
		{"whitespace name", CustomerData{Name: "   ", ContactInfo: ContactInfo{Email: "example@mail.com"}}, true},
		{"no contact channel", CustomerData{Name: "John Doe"}, true},
	}

	v := NewCustomerValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCustomer(tt.customer)
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name    string
		payment PaymentData
		wantErr bool
	}{
		{"valid", PaymentData{Amount: 500, Source: "tok_mastercard"}, false},
		{"zero amount", PaymentData{Amount: 0, Source: "tok_mastercard"}, true},
		{"negative amount", PaymentData{Amount: -100, Source: "tok_mastercard"}, true},
		{"missing source", PaymentData{Amount: 500}, true},
		{"whitespace source", PaymentData{Amount: 500, Source: "  "}, true},
	}

	v := NewPaymentValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePayment(tt.payment)
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
