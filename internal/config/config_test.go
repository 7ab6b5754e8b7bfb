package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("PAYMENT_CURRENCY", "")
	t.Setenv("TRANSACTION_LOG_PATH", "")
	cfg := Load()
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %s", cfg.LogLevel)
	}
	if cfg.Currency != "usd" {
		t.Fatalf("expected default currency, got %s", cfg.Currency)
	}
	if cfg.TransactionLogPath != "transactions.log" {
		t.Fatalf("expected default transaction log path, got %s", cfg.TransactionLogPath)
	}
	if cfg.AllowOfflinePayments {
		t.Fatalf("expected offline payments disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_PRICE_ID", "price_456")
	t.Setenv("STRIPE_BASE_URL", "http://localhost:12111")
	t.Setenv("PAYMENT_CURRENCY", "eur")
	t.Setenv("TRANSACTION_LOG_PATH", "/var/log/payments/transactions.log")
	t.Setenv("SENDGRID_API_KEY", "SG.abc")
	t.Setenv("SMS_GATEWAY_URL", "https://sms.example.com")
	t.Setenv("ALLOW_OFFLINE_PAYMENTS", "true")
	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.StripeSecretKey != "sk_test_123" {
		t.Fatalf("expected stripe key override, got %s", cfg.StripeSecretKey)
	}
	if cfg.StripePriceID != "price_456" {
		t.Fatalf("expected price id override, got %s", cfg.StripePriceID)
	}
	if cfg.StripeBaseURL != "http://localhost:12111" {
		t.Fatalf("expected base url override, got %s", cfg.StripeBaseURL)
	}
	if cfg.Currency != "eur" {
		t.Fatalf("expected currency override, got %s", cfg.Currency)
	}
	if cfg.TransactionLogPath != "/var/log/payments/transactions.log" {
		t.Fatalf("expected log path override, got %s", cfg.TransactionLogPath)
	}
	if cfg.SendGridAPIKey != "SG.abc" {
		t.Fatalf("expected sendgrid key override, got %s", cfg.SendGridAPIKey)
	}
	if cfg.SMSGatewayURL != "https://sms.example.com" {
		t.Fatalf("expected sms gateway override, got %s", cfg.SMSGatewayURL)
	}
	if !cfg.AllowOfflinePayments {
		t.Fatalf("expected offline payments enabled")
	}
}
