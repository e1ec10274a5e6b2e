package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev-only-jwt-secret"

type Config struct {
	Env           string
	Port          string
	JWTSecret     string
	SessionSecret string
	SessionTTL    time.Duration

	// AdminEmail and AdminPassword seed the first Admin account at startup.
	// Both must be set for the seed to run.
	AdminEmail    string
	AdminPassword string

	Store StoreConfig
}

// StoreConfig bounds the retries of every document store call.
type StoreConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	MaxAttempts     int
	MaxBackoff      time.Duration
}

// Load reads .env (if present) and the process environment. JWT_SECRET may
// only be omitted when APP_ENV is "dev".
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getenvDefault("APP_ENV", "dev"),
		Port:          getenvDefault("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Store: StoreConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
	}

	var err error
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Store.MaxBackoff, err = durationEnv("STORE_MAX_BACKOFF", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.Store.MaxAttempts, err = intEnv("STORE_MAX_ATTEMPTS", 3); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDev() {
			return nil, errors.New("JWT_SECRET is not set")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = cfg.JWTSecret
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return strings.EqualFold(c.Env, "dev")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, errors.New(key + " must be a positive duration")
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, errors.New(key + " must be a positive integer")
	}
	return n, nil
}
