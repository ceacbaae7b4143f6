package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env      string
	HTTPPort string
	LogLevel string

	// Login credential. Both deliberately optional at startup: a missing
	// hash or salt is surfaced as a configuration error at login time, and
	// there is no fallback salt.
	PasswordHash string
	PasswordSalt string

	SessionTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	LoginRateLimitPerMin int
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		PasswordHash:         os.Getenv("APP_PASSWORD_HASH"),
		PasswordSalt:         os.Getenv("PASSWORD_SALT"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		MinioEndpoint:        getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:       os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:       os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:          getEnv("MINIO_BUCKET", "assetvista"),
		MinioUseSSL:          getEnvBool("MINIO_USE_SSL", false),
		LoginRateLimitPerMin: getEnvInt("LOGIN_RATE_LIMIT_PER_MIN", 10),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("parse SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string
	if c.RedisAddr == "" {
		errs = append(errs, "REDIS_ADDR is required")
	}
	if c.MinioEndpoint == "" {
		errs = append(errs, "MINIO_ENDPOINT is required")
	}
	if c.MinioAccessKey == "" {
		errs = append(errs, "MINIO_ACCESS_KEY is required")
	}
	if c.MinioSecretKey == "" {
		errs = append(errs, "MINIO_SECRET_KEY is required")
	}
	if c.MinioBucket == "" {
		errs = append(errs, "MINIO_BUCKET is required")
	}
	if c.SessionTTL <= 0 || c.SessionTTL > 30*24*time.Hour {
		errs = append(errs, "SESSION_TTL must be between 1s and 30d")
	}
	if c.LoginRateLimitPerMin <= 0 {
		errs = append(errs, "LOGIN_RATE_LIMIT_PER_MIN must be > 0")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// IsProduction controls cookie security attributes.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
