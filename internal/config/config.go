// Package config reads the client's environment configuration. Missing
// values degrade the corresponding feature instead of failing startup:
// without an API URL every call errors at the transport, and without a
// publishable key online payments are unavailable.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all client configuration.
type Config struct {
	// APIBaseURL is the backend REST API root.
	APIBaseURL string
	// PaymentPublishableKey is the processor's publishable key.
	PaymentPublishableKey string
	// PaymentReturnAddr is the bind address for the payment return listener.
	PaymentReturnAddr string
	// CredentialsPath is where the persisted user record lives.
	CredentialsPath string
	// HTTPTimeout bounds each backend call.
	HTTPTimeout time.Duration
}

// Load reads configuration from a .env file and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		APIBaseURL:            os.Getenv("LEASEIFY_API_URL"),
		PaymentPublishableKey: os.Getenv("LEASEIFY_PAYMENT_KEY"),
		PaymentReturnAddr:     getEnv("LEASEIFY_RETURN_ADDR", "127.0.0.1:4242"),
		CredentialsPath:       getEnv("LEASEIFY_CREDENTIALS", defaultCredentialsPath()),
		HTTPTimeout:           getDuration("LEASEIFY_HTTP_TIMEOUT_SECONDS", 30),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallbackSeconds int) time.Duration {
	seconds := fallbackSeconds
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			seconds = parsed
		}
	}
	return time.Duration(seconds) * time.Second
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".leaseify", "user.json")
	}
	return filepath.Join(home, ".leaseify", "user.json")
}
