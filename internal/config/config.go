// Package config reads service settings from the environment.
//
// A .env file in the working directory is loaded by cmd/api before Load runs.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"heritage_gold/internal/logging"
)

type Config struct {
	Port    int
	Logging logging.Config

	AWS    AWSConfig
	Tables TablesConfig

	Rates  RatesConfig
	Notify NotifyConfig

	CORSAllowOrigins []string
}

// AWSConfig holds DynamoDB connection settings.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint points at a local DynamoDB (e.g. http://dynamodb:8000).
	Endpoint string
}

type TablesConfig struct {
	Items        string
	Rates        string
	OrderIntents string
	Contacts     string
	Profile      string
}

// RatesConfig controls the gold-rate feed and its cache.
type RatesConfig struct {
	FeedURL         string
	FeedAPIKey      string
	FeedTimeout     time.Duration
	RefreshInterval time.Duration
	MaxStaleness    time.Duration
}

type NotifyConfig struct {
	TelegramBotToken string
	TelegramChatID   string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SenderEmail  string
}

func Default() Config {
	return Config{
		Port:    8080,
		Logging: logging.DefaultConfig(),
		AWS: AWSConfig{
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		},
		Tables: TablesConfig{
			Items:        "jewellery_items",
			Rates:        "gold_rates",
			OrderIntents: "order_intents",
			Contacts:     "contacts",
			Profile:      "goldsmith_profile",
		},
		Rates: RatesConfig{
			FeedURL:         "https://www.goldapi.io/api/XAU/INR",
			FeedAPIKey:      "goldapi-demo",
			FeedTimeout:     10 * time.Second,
			RefreshInterval: 5 * time.Minute,
			MaxStaleness:    time.Hour,
		},
		Notify: NotifyConfig{
			SMTPPort:    587,
			SenderEmail: "onboarding@heritagegold.in",
		},
		CORSAllowOrigins: []string{"*"},
	}
}

// Load overlays environment variables on top of Default.
func Load() Config {
	cfg := Default()

	cfg.Port = getenvInt("PORT", cfg.Port)
	cfg.Logging.Level = getenvDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getenvDefault("LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.Output = getenvDefault("LOG_OUTPUT", cfg.Logging.Output)

	cfg.AWS.Region = getenvDefault("AWS_REGION", cfg.AWS.Region)
	cfg.AWS.AccessKeyID = getenvDefault("AWS_ACCESS_KEY_ID", cfg.AWS.AccessKeyID)
	cfg.AWS.SecretAccessKey = getenvDefault("AWS_SECRET_ACCESS_KEY", cfg.AWS.SecretAccessKey)
	cfg.AWS.Endpoint = os.Getenv("DYNAMODB_ENDPOINT")

	cfg.Tables.Items = getenvDefault("ITEMS_TABLE", cfg.Tables.Items)
	cfg.Tables.Rates = getenvDefault("RATES_TABLE", cfg.Tables.Rates)
	cfg.Tables.OrderIntents = getenvDefault("ORDER_INTENTS_TABLE", cfg.Tables.OrderIntents)
	cfg.Tables.Contacts = getenvDefault("CONTACTS_TABLE", cfg.Tables.Contacts)
	cfg.Tables.Profile = getenvDefault("PROFILE_TABLE", cfg.Tables.Profile)

	cfg.Rates.FeedURL = getenvDefault("GOLD_API_URL", cfg.Rates.FeedURL)
	cfg.Rates.FeedAPIKey = getenvDefault("GOLD_API_KEY", cfg.Rates.FeedAPIKey)
	cfg.Rates.FeedTimeout = getenvDuration("GOLD_API_TIMEOUT", cfg.Rates.FeedTimeout)
	cfg.Rates.RefreshInterval = getenvDuration("RATE_REFRESH_INTERVAL", cfg.Rates.RefreshInterval)
	cfg.Rates.MaxStaleness = getenvDuration("RATE_MAX_STALENESS", cfg.Rates.MaxStaleness)

	cfg.Notify.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.Notify.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")
	cfg.Notify.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Notify.SMTPPort = getenvInt("SMTP_PORT", cfg.Notify.SMTPPort)
	cfg.Notify.SMTPUser = os.Getenv("SMTP_USER")
	cfg.Notify.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Notify.SenderEmail = getenvDefault("SENDER_EMAIL", cfg.Notify.SenderEmail)

	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.CORSAllowOrigins = splitList(v)
	}

	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
