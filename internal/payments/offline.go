package payments

import (
	"context"

	"github.com/google/uuid"

	"github.com/lgoenaga/solid-principies/pkg/logging"
)

// OfflineProcessor accepts every charge without contacting a gateway. It
// is the degraded-mode fallback for disconnected environments and demos,
// and must be gated by configuration (ALLOW_OFFLINE_PAYMENTS).
type OfflineProcessor struct {
	logger *logging.Logger
}

// NewOfflineProcessor creates an offline charge processor.
func NewOfflineProcessor(logger *logging.Logger) *OfflineProcessor {
	if logger == nil {
		logger = logging.Default()
	}
	return &OfflineProcessor{logger: logger}
}

var _ ChargeProcessor = (*OfflineProcessor)(nil)

// Charge always succeeds, stamping the response with a fresh transaction id.
func (p *OfflineProcessor) Charge(ctx context.Context, customer CustomerData, payment PaymentData) (PaymentResponse, error) {
	_ = ctx
	transactionID := uuid.New().String()
	p.logger.Info("offline payment processed",
		"customer", customer.Name,
		"amount_cents", payment.Amount,
		"transaction_id", transactionID,
	)
	return PaymentResponse{
		Status:        StatusOfflineProcessed,
		Amount:        payment.Amount,
		TransactionID: transactionID,
		Message:       "Offline payment processed successfully",
	}, nil
}
