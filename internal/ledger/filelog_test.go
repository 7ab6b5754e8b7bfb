package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgoenaga/solid-principies/internal/payments"
)

func TestFileLog_AppendsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.log")
	l := NewFileLog(path)

	customer := payments.CustomerData{Name: "John Doe", ContactInfo: payments.ContactInfo{Email: "example@mail.com"}}
	payment := payments.PaymentData{Amount: 500, Source: "tok_mastercard"}

	err := l.LogTransaction(customer, payment, payments.PaymentResponse{
		Status:        payments.StatusSucceeded,
		Amount:        500,
		TransactionID: "ch_test_1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = l.LogTransaction(customer, payment, payments.PaymentResponse{
		Status:        payments.StatusSucceeded,
		Amount:        500,
		TransactionID: "ch_test_2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	content := string(data)

	// Appended, never truncated: both records survive.
	if !strings.Contains(content, "Transaction ID: ch_test_1") {
		t.Errorf("first record missing:\n%s", content)
	}
	if !strings.Contains(content, "Transaction ID: ch_test_2") {
		t.Errorf("second record missing:\n%s", content)
	}
	if got := strings.Count(content, "John Doe paid 500"); got != 2 {
		t.Errorf("expected 2 customer lines, got %d:\n%s", got, content)
	}
	if !strings.Contains(content, "Status: succeeded") {
		t.Errorf("status line missing:\n%s", content)
	}
}

func TestFileLog_RefundRecordWithoutCustomer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.log")
	l := NewFileLog(path)

	err := l.LogTransaction(payments.CustomerData{}, payments.PaymentData{}, payments.PaymentResponse{
		Status:        payments.StatusRefunded,
		TransactionID: "ch_test_1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "paid") {
		t.Errorf("refund record must not fabricate a customer line:\n%s", content)
	}
	if !strings.Contains(content, "Transaction ID: ch_test_1") || !strings.Contains(content, "Status: refunded") {
		t.Errorf("refund record incomplete:\n%s", content)
	}
}

func TestFileLog_UnwritablePathPropagates(t *testing.T) {
	l := NewFileLog(filepath.Join(t.TempDir(), "missing", "transactions.log"))

	err := l.LogTransaction(payments.CustomerData{Name: "John Doe"}, payments.PaymentData{Amount: 500}, payments.PaymentResponse{
		Status: payments.StatusSucceeded,
	})
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
