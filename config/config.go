package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

const defaultTokenTTL = 60 * time.Minute

// Config holds the environment-driven settings the application needs at startup.
type Config struct {
	DBURL     string
	SecretKey string
	Port      string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment. Missing required
// variables are reported as errors so startup can fail fast.
func Load() (*Config, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("database URL (DB_URL) is not set in environment variables")
	}

	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		return nil, errors.New("JWT signing secret (SECRET_KEY) is not set in environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, errors.New("TOKEN_TTL_MINUTES must be a positive integer")
		}
		ttl = time.Duration(minutes) * time.Minute
	}

	return &Config{
		DBURL:     dbURL,
		SecretKey: secretKey,
		Port:      port,
		TokenTTL:  ttl,
	}, nil
}
