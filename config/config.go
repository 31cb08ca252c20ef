package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	LogLevel           string
	FrontendURL        string
	CORSAllowedOrigins []string
	// Gemini
	GeminiAPIKey string
	GeminiModel  string
	AITimeout    time.Duration
	// Optional user persistence
	DatabaseEnabled bool
	DatabaseURL     string // postgres://... or sqlite://path
	// Redis
	RedisURL      string
	RedisPassword string
	// Rate limiting
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitUploadThreshold int
	// Uploads
	UploadMaxBytes  int64
	ClamAVAddresses []string // comma separated; every daemon must pass a file
	S3Provider      string
	S3Bucket        string
	S3Region        string
	S3AccessKeyID   string
	S3SecretKey     string
	S3Endpoint      string
}

const defaultUploadMaxBytes = 5 << 20

func LoadConfig() (*Config, error) {
	// Only present in local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		FrontendURL:        strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),

		GeminiAPIKey: strings.TrimSpace(getEnv("GEMINI_API_KEY", "")),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AITimeout:    time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 20)) * time.Second,

		DatabaseEnabled: getEnvBool("DATABASE_ENABLED", false),
		DatabaseURL:     getEnv("DATABASE_URL", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_THRESHOLD", 100),
		RateLimitUploadThreshold: getEnvInt("UPLOAD_RATE_LIMIT_THRESHOLD", 10),

		UploadMaxBytes:  int64(getEnvInt("UPLOAD_MAX_BYTES", defaultUploadMaxBytes)),
		ClamAVAddresses: getEnvList("CLAMAV_ADDRESS"),
		S3Provider:      strings.ToLower(getEnv("S3_PROVIDER", "aws")),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Region:        getEnv("S3_REGION", ""),
		S3AccessKeyID:   getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:     getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
	}

	if cfg.FrontendURL != "" {
		cfg.CORSAllowedOrigins = appendUnique(cfg.CORSAllowedOrigins, cfg.FrontendURL)
	}
	if cfg.AITimeout <= 0 {
		cfg.AITimeout = 20 * time.Second
	}
	if cfg.UploadMaxBytes <= 0 {
		cfg.UploadMaxBytes = defaultUploadMaxBytes
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY not configured, suggestions use the deterministic fallback")
	}
	if cfg.RedisURL == "" {
		slog.Warn("REDIS_URL not configured, rate limiting uses in-memory fallback")
	}

	return cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	if c.DatabaseEnabled && strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_ENABLED is set but DATABASE_URL is empty")
	}
	if c.RateLimitWindowSeconds <= 0 {
		return errors.New("RATE_LIMIT_WINDOW_SECONDS must be positive")
	}
	return nil
}

func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimRight(strings.TrimSpace(item), "/"); item != "" {
			out = appendUnique(out, item)
		}
	}
	return out
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
