package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the member service
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Database
	DatabaseURL      string
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Redis session cache
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Tokens
	TokenSecret     string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Kakao OAuth
	KakaoClientID    string
	KakaoRedirectURI string
	KakaoAuthBaseURL string
	KakaoAPIBaseURL  string

	// Mail
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	// Image upload
	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9505")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	config.DatabaseHost = getEnvOrDefault("DB_HOST", "member-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "member_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "member_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Redis configuration
	config.RedisAddr = getEnvOrDefault("REDIS_ADDR", "member-redis:6379")
	config.RedisPassword = os.Getenv("REDIS_PASSWORD")

	redisDBStr := getEnvOrDefault("REDIS_DB", "0")
	redisDB, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	config.RedisDB = redisDB

	// Token configuration
	config.TokenSecret = os.Getenv("TOKEN_SECRET")
	if config.TokenSecret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET is required")
	}

	accessTTLStr := getEnvOrDefault("ACCESS_TOKEN_TTL", "30m")
	config.AccessTokenTTL, err = time.ParseDuration(accessTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
	}

	refreshTTLStr := getEnvOrDefault("REFRESH_TOKEN_TTL", "168h")
	config.RefreshTokenTTL, err = time.ParseDuration(refreshTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_TOKEN_TTL: %w", err)
	}

	// Kakao OAuth configuration
	config.KakaoClientID = os.Getenv("KAKAO_CLIENT_ID")
	config.KakaoRedirectURI = os.Getenv("KAKAO_REDIRECT_URI")
	config.KakaoAuthBaseURL = getEnvOrDefault("KAKAO_AUTH_BASE_URL", "https://kauth.kakao.com")
	config.KakaoAPIBaseURL = getEnvOrDefault("KAKAO_API_BASE_URL", "https://kapi.kakao.com")

	// Mail configuration
	config.SMTPHost = getEnvOrDefault("SMTP_HOST", "localhost")

	smtpPortStr := getEnvOrDefault("SMTP_PORT", "587")
	config.SMTPPort, err = strconv.Atoi(smtpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTPUsername = os.Getenv("SMTP_USERNAME")
	config.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	config.MailFrom = getEnvOrDefault("MAIL_FROM", "no-reply@hobbyit.local")

	// Image upload configuration
	config.S3Bucket = getEnvOrDefault("S3_BUCKET", "member-images")
	config.S3Region = getEnvOrDefault("S3_REGION", "ap-northeast-2")
	config.S3PublicBaseURL = os.Getenv("S3_PUBLIC_BASE_URL")

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate token lifetimes (access tokens are short-lived, refresh long-lived)
	if c.AccessTokenTTL < time.Minute {
		return fmt.Errorf("access token lifetime must be at least 1 minute, got: %v", c.AccessTokenTTL)
	}
	if c.RefreshTokenTTL <= c.AccessTokenTTL {
		return fmt.Errorf("refresh token lifetime (%v) must exceed access token lifetime (%v)", c.RefreshTokenTTL, c.AccessTokenTTL)
	}

	// Validate SMTP port
	if c.SMTPPort < 1 || c.SMTPPort > 65535 {
		return fmt.Errorf("SMTP port must be between 1 and 65535: %d", c.SMTPPort)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
