// Package ledger provides the durable transaction sink: a plain text
// file opened in append mode.
package ledger

import (
	"fmt"
	"os"
	"strings"

	"github.com/lgoenaga/solid-principies/internal/payments"
)

// FileLog appends transaction records to a text file. The file is never
// truncated or rotated; write failures propagate to the caller.
type FileLog struct {
	path string
}

// NewFileLog creates a file-backed transaction log at the given path.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

var _ payments.TransactionLogger = (*FileLog)(nil)

// LogTransaction appends one record: the customer line when a customer is
// in scope, then the transaction id when present, then the status. The
// record shape is the same for charges, refunds, and recurrence setups.
func (l *FileLog) LogTransaction(customer payments.CustomerData, payment payments.PaymentData, resp payments.PaymentResponse) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("ledger: open %s: %w", l.path, err)
	}

	var record strings.Builder
	if customer.Name != "" {
		fmt.Fprintf(&record, "%s paid %d\n", customer.Name, payment.Amount)
	}
	if resp.TransactionID != "" {
		fmt.Fprintf(&record, "Transaction ID: %s\n", resp.TransactionID)
	}
	fmt.Fprintf(&record, "Status: %s\n", resp.Status)

	_, writeErr := f.WriteString(record.String())
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("ledger: append %s: %w", l.path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("ledger: close %s: %w", l.path, closeErr)
	}
	return nil
}
