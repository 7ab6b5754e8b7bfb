package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Env      string
	LogLevel string

	// Payment gateway
	StripeSecretKey string
	StripePriceID   string
	StripeBaseURL   string
	Currency        string

	// Transaction log sink
	TransactionLogPath string

	// Email notifications
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	SESFromEmail      string
	SESFromName       string

	// AWS (SES sender)
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	// SMS notifications
	SMSGatewayURL    string
	SMSGatewayAPIKey string
	SMSFromNumber    string

	AllowOfflinePayments bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		StripePriceID:   getEnv("STRIPE_PRICE_ID", ""),
		StripeBaseURL:   getEnv("STRIPE_BASE_URL", ""),
		Currency:        getEnv("PAYMENT_CURRENCY", "usd"),

		TransactionLogPath: getEnv("TRANSACTION_LOG_PATH", "transactions.log"),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "no-reply@example.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Payments"),
		SESFromEmail:      getEnv("SES_FROM_EMAIL", ""),
		SESFromName:       getEnv("SES_FROM_NAME", "Payments"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),

		SMSGatewayURL:    getEnv("SMS_GATEWAY_URL", ""),
		SMSGatewayAPIKey: getEnv("SMS_GATEWAY_API_KEY", ""),
		SMSFromNumber:    getEnv("SMS_FROM_NUMBER", ""),

		AllowOfflinePayments: getEnvAsBool("ALLOW_OFFLINE_PAYMENTS", false),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
