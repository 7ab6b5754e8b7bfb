// Command paymentsvc demonstrates the payment pipeline with sample data:
// one-time charges confirmed over email and SMS, a refund, recurring
// billing setup, and the offline fallback processor.
package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"

	"github.com/lgoenaga/solid-principies/internal/app/bootstrap"
	appconfig "github.com/lgoenaga/solid-principies/internal/config"
	"github.com/lgoenaga/solid-principies/internal/ledger"
	"github.com/lgoenaga/solid-principies/internal/notify"
	"github.com/lgoenaga/solid-principies/internal/observability/metrics"
	"github.com/lgoenaga/solid-principies/internal/payments"
	"github.com/lgoenaga/solid-principies/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Default().Debug("no .env file found, using environment as-is")
	}

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting payment service demo", "env", cfg.Env, "currency", cfg.Currency)

	ctx := context.Background()
	m := metrics.NewPaymentMetrics(nil)

	emailService := bootstrap.BuildPaymentService(cfg, logger, payments.WithMetrics(m))
	smsService := bootstrap.BuildPaymentService(cfg, logger,
		payments.WithMetrics(m),
		payments.WithNotifier(notify.NewSMSNotifier(bootstrap.NewSMSSender(cfg, logger), logger)),
	)

	customerWithEmail := payments.CustomerData{
		Name:        "John Doe",
		ContactInfo: payments.ContactInfo{Email: "example@mail.com"},
	}
	customerWithPhone := payments.CustomerData{
		Name:        "Jane Smith",
		ContactInfo: payments.ContactInfo{Phone: "1234567890"},
	}
	payment := payments.PaymentData{Amount: 500, Source: "tok_mastercard"}

	charge, err := emailService.ProcessPayment(ctx, payment, customerWithEmail)
	if err != nil {
		logger.Error("charge pipeline failed", "error", err)
	} else {
		logger.Info("charge completed", "status", charge.Status, "transaction_id", charge.TransactionID)
	}

	if _, err := smsService.ProcessPayment(ctx, payment, customerWithPhone); err != nil {
		logger.Error("sms-confirmed charge pipeline failed", "error", err)
	}

	if charge.TransactionID != "" {
		refund, err := emailService.RefundPayment(ctx, charge.TransactionID)
		if err != nil {
			logger.Error("refund failed", "error", err)
		} else {
			logger.Info("refund completed", "status", refund.Status, "transaction_id", refund.TransactionID)
		}
	}

	recurrence, err := emailService.SetupRecurrencePayment(ctx, payment, customerWithEmail)
	if errors.Is(err, payments.ErrRecurrenceNotSupported) {
		logger.Warn("recurrence not configured for this service")
	} else if err != nil {
		logger.Error("recurrence setup failed", "error", err)
	} else {
		logger.Info("recurrence active", "status", recurrence.Status, "unit_amount_cents", recurrence.Amount)
	}

	if cfg.AllowOfflinePayments {
		offlineService := payments.NewService(payments.NewOfflineProcessor(logger), logger,
			payments.WithNotifier(notify.NewContactNotifier(
				bootstrap.NewEmailSender(ctx, cfg, logger),
				bootstrap.NewSMSSender(cfg, logger),
				logger,
			)),
			payments.WithTransactionLogger(ledger.NewFileLog(cfg.TransactionLogPath)),
			payments.WithMetrics(m),
		)
		offline, err := offlineService.ProcessPayment(ctx, payment, customerWithEmail)
		if err != nil {
			logger.Error("offline charge pipeline failed", "error", err)
		} else {
			logger.Info("offline charge completed", "status", offline.Status, "transaction_id", offline.TransactionID)
		}
	}
}
