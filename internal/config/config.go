package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/5w1tchy/library-catalog/internal/pagination"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	LogLevel    slog.Level
	DatabaseURL string
	PageSize    int

	RedisURL      string
	RedisAddr     string
	RedisUser     string
	RedisPassword string

	RateLimitRPS   float64
	RateLimitBurst int

	TLSCert string
	TLSKey  string

	CSRFSecureCookie bool
	StrictSecurity   bool
	MaxBodySize      int64

	S3 S3Config
}

type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// Load reads an optional .env file and then the process environment.
// Fail-fast on bad config.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f) // missing file is fine
	}

	cfg := Config{
		Port:          envString("PORT", "3000"),
		Env:           envString("APP_ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisUser:     os.Getenv("REDIS_USER"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		TLSCert:       os.Getenv("TLS_CERT"),
		TLSKey:        os.Getenv("TLS_KEY"),
		S3: S3Config{
			Endpoint:        os.Getenv("AWS_ENDPOINT"),
			Region:          envString("AWS_REGION", "auto"),
			Bucket:          os.Getenv("AWS_BUCKET"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	var err error
	if cfg.LogLevel, err = envLevel("LOG_LEVEL", slog.LevelInfo); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.PageSize, err = envMinInt("PAGE_SIZE", pagination.PageSize, 1); err != nil {
		return Config{}, fmt.Errorf("PAGE_SIZE: %w", err)
	}
	if cfg.RateLimitRPS, err = envPositiveFloat("RATE_LIMIT_RPS", 5); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = envMinInt("RATE_LIMIT_BURST", 20, 1); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	maxBody, err := envMinInt("MAX_BODY_SIZE", 1<<20, 1)
	if err != nil {
		return Config{}, fmt.Errorf("MAX_BODY_SIZE: %w", err)
	}
	cfg.MaxBodySize = int64(maxBody)
	cfg.CSRFSecureCookie = os.Getenv("CSRF_SECURE_COOKIE") == "1"
	cfg.StrictSecurity = os.Getenv("STRICT_SECURITY") == "1"

	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	return cfg, nil
}

// UseRedis reports whether any Redis connection settings were provided.
func (c Config) UseRedis() bool { return c.RedisURL != "" || c.RedisAddr != "" }

// HardeningWarnings returns non-fatal warnings you may want to log on startup.
func (c Config) HardeningWarnings() []string {
	var warns []string
	if c.DatabaseURL == "" {
		warns = append(warns, "DATABASE_URL not set; using the in-memory store (data is lost on restart)")
	}
	if strings.EqualFold(c.Env, "production") {
		if c.TLSCert == "" {
			warns = append(warns, "TLS_CERT/TLS_KEY not set in production; serving plain HTTP")
		}
		if !c.CSRFSecureCookie {
			warns = append(warns, "CSRF_SECURE_COOKIE!=1 in production; CSRF cookie is sent over plain HTTP")
		}
		if strings.HasPrefix(c.RedisURL, "redis://") {
			warns = append(warns, "REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
	}
	return warns
}

// --- helpers ---

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envMinInt(key string, def, min int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("not a number: %v", err)
	}
	if n < min {
		return 0, fmt.Errorf("must be >= %d", min)
	}
	return n, nil
}

func envPositiveFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("invalid rate %q", v)
	}
	return f, nil
}

func envLevel(key string, def slog.Level) (slog.Level, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		return def, err
	}
	return lvl, nil
}
