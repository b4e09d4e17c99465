package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port          int
	DatabaseURL   string
	JWTSecret     string
	SiteURL       string
	CORSOrigins   []string
	AdminEmail    string
	AdminPassword string
	LogLevel      string
	LogFormat     string

	// Stripe credentials. When either key is missing the checkout flow runs in
	// simulated mode and never talks to the payment provider.
	StripeSecretKey      string
	StripePublishableKey string
	StripeWebhookSecret  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	port, _ := strconv.Atoi(getEnv("PORT", "4001"))

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	origins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Port:                 port,
		DatabaseURL:          dbURL,
		JWTSecret:            jwtSecret,
		SiteURL:              strings.TrimRight(getEnv("SITE_URL", "http://localhost:3000"), "/"),
		CORSOrigins:          origins,
		AdminEmail:           getEnv("ADMIN_EMAIL", "admin@adwell.local"),
		AdminPassword:        getEnv("ADMIN_PASSWORD", "admin123"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
		StripeSecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
		StripePublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", ""),
		StripeWebhookSecret:  getEnv("STRIPE_WEBHOOK_SECRET", ""),
	}, nil
}

// SimulatedCheckout reports whether checkout should bypass the payment
// provider. Both keys must be present for real sessions.
func (c *Config) SimulatedCheckout() bool {
	return c.StripeSecretKey == "" || c.StripePublishableKey == ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
