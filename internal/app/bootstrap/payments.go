// Package bootstrap wires the default payment pipeline from
// configuration so every binary shares the same composition.
package bootstrap

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	appconfig "github.com/lgoenaga/solid-principies/internal/config"
	"github.com/lgoenaga/solid-principies/internal/ledger"
	"github.com/lgoenaga/solid-principies/internal/notify"
	"github.com/lgoenaga/solid-principies/internal/payments"
	"github.com/lgoenaga/solid-principies/pkg/logging"
)

// BuildPaymentService composes the default service: a Stripe-backed
// processor carrying the charge, refund, and recurrence capabilities, an
// email notifier, and the file transaction log. Extra options are applied
// last, so callers can swap any collaborator.
func BuildPaymentService(cfg *appconfig.Config, logger *logging.Logger, extra ...payments.Option) *payments.Service {
	if logger == nil {
		logger = logging.Default()
	}

	stripe := payments.NewStripeProcessor(cfg.StripeSecretKey, cfg.StripePriceID, logger).
		WithBaseURL(cfg.StripeBaseURL).
		WithCurrency(cfg.Currency)

	notifier := notify.NewEmailNotifier(NewEmailSender(context.Background(), cfg, logger), logger)
	txlog := ledger.NewFileLog(cfg.TransactionLogPath)

	opts := []payments.Option{
		payments.WithNotifier(notifier),
		payments.WithTransactionLogger(txlog),
		payments.WithRefundProcessor(stripe),
		payments.WithRecurrenceProcessor(stripe),
	}
	opts = append(opts, extra...)
	return payments.NewService(stripe, logger, opts...)
}

// NewEmailSender picks the configured email transport: SendGrid when an
// API key is present, AWS SES when a from-address is configured, and the
// logging stub otherwise.
func NewEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	if sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sender != nil {
		return sender
	}

	if cfg.SESFromEmail != "" {
		awsCfg, err := loadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config for SES, falling back to stub email sender", "error", err)
		} else if sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger); sender != nil {
			return sender
		}
	}

	return notify.NewStubEmailSender(logger)
}

// NewSMSSender picks the configured SMS transport, falling back to the
// logging stub when the gateway is not configured.
func NewSMSSender(cfg *appconfig.Config, logger *logging.Logger) notify.SMSSender {
	if cfg.SMSGatewayURL != "" && cfg.SMSGatewayAPIKey != "" {
		return notify.NewGatewaySMSSender(cfg.SMSGatewayURL, cfg.SMSGatewayAPIKey, cfg.SMSFromNumber, logger)
	}
	return notify.NewStubSMSSender(logger)
}

// loadAWSConfig centralizes AWS SDK initialization for the SES sender.
func loadAWSConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	loaders := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
	if strings.TrimSpace(cfg.AWSAccessKeyID) != "" && strings.TrimSpace(cfg.AWSSecretAccessKey) != "" {
		loaders = append(loaders, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, loaders...)
}
