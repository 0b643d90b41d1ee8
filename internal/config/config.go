package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string

	DBDSN     string
	RedisAddr string

	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	// LocalUTCOffset is the fixed offset between the caller-facing local
	// time and the UTC values kept in storage. Zero means local time is GMT.
	LocalUTCOffset time.Duration

	// Rate limiting (per client IP).
	RateLimit       int
	RateLimitWindow time.Duration

	PhotoDir string
}

// Load reads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")
	cfg.IsProduction = getEnv("APP_ENV", "dev") == prodString
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_ACCESS_TOKEN_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.JWTAccessTokenTTL = ttl

	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// Parsed as a time.Duration, e.g. "-3h" for GMT-3. The source locale
	// runs on GMT, hence the zero default.
	offset, err := time.ParseDuration(getEnv("LOCAL_UTC_OFFSET", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCAL_UTC_OFFSET: %w", err)
	}
	cfg.LocalUTCOffset = offset

	cfg.RateLimit, err = getEnvAsInt("RATE_LIMIT", 100)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}

	window, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	cfg.RateLimitWindow = window

	cfg.PhotoDir = getEnv("PHOTO_DIR", "./data/photos")

	return cfg, nil
}

// getEnv returns the environment variable value, or the default if unset.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as an integer, returning the
// default when unset and an error when set but not numeric.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
