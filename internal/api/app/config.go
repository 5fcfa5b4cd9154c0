package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Cognito issuer settings. Region and user pool id build the issuer URL;
	// the app client id is the expected audience.
	CognitoRegion     string // Required: AWS region of the user pool
	CognitoUserPoolID string // Required: user pool id
	CognitoClientID   string // Required: app client id (aud claim)

	JWKSURL       string // Optional: override the derived {issuer}/.well-known/jwks.json
	EagerJWKS     bool   // Optional: fetch JWKS at startup and refuse to start on failure (default: true)
	RequiredScope string // Optional: custom scope protected endpoints must carry

	DatabaseFile string // Optional: path to SQLite database file (default: ./officemate.db)
	RSVPBaseURL  string // Optional: public origin for RSVP links in invite emails

	SMTPHost string // Optional: SMTP relay; empty falls back to log-only email
	SMTPPort int    // Optional: SMTP port (default: 587)
	SMTPFrom string // Optional: From address for outbound mail
	SMTPUser string // Optional
	SMTPPass string // Optional

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, with a .env file as a
// local-dev convenience. Missing Cognito settings are a hard error since the
// service cannot verify a single token without them.
func LoadConfig() (Config, error) {
	// Ignore a missing .env; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		CognitoRegion:       os.Getenv("COG_REGION"),
		CognitoUserPoolID:   os.Getenv("COG_USER_POOL_ID"),
		CognitoClientID:     os.Getenv("COG_CLIENT_ID"),
		JWKSURL:             os.Getenv("AUTH_JWKS_URL"),
		EagerJWKS:           getEnvBoolOrDefault("AUTH_EAGER_JWKS", true),
		RequiredScope:       os.Getenv("AUTH_REQUIRED_SCOPE"),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "officemate.db"),
		RSVPBaseURL:         os.Getenv("RSVP_BASE_URL"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPFrom:            os.Getenv("SMTP_FROM"),
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.CognitoRegion == "" || cfg.CognitoUserPoolID == "" || cfg.CognitoClientID == "" {
		return Config{}, fmt.Errorf("COG_REGION, COG_USER_POOL_ID and COG_CLIENT_ID must be set")
	}

	return cfg, nil
}

// Issuer returns the expected iss claim for the configured user pool.
func (c Config) Issuer() string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", c.CognitoRegion, c.CognitoUserPoolID)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers read as seconds
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}

	return defaultValue
}
