package integration

import (
	"context"
	"fmt"
	"time"

	"member-service/app/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// Test environment configuration
	TestPostgresHost     = "localhost"
	TestPostgresPort     = "5433"
	TestPostgresDB       = "member_test_db"
	TestPostgresUser     = "member_test_user"
	TestPostgresPassword = "test_password"
	TestPostgresSSLMode  = "disable"

	TestMemberServiceURL = "http://localhost:9505"
)

// TestConfig creates a configuration for integration tests
func TestConfig() *config.Config {
	return &config.Config{
		// Server
		Port:     "9505",
		Host:     "0.0.0.0",
		LogLevel: "debug",

		// Database
		DatabaseURL:      fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", TestPostgresUser, TestPostgresPassword, TestPostgresHost, TestPostgresPort, TestPostgresDB, TestPostgresSSLMode),
		DatabaseHost:     TestPostgresHost,
		DatabasePort:     TestPostgresPort,
		DatabaseName:     TestPostgresDB,
		DatabaseUser:     TestPostgresUser,
		DatabasePassword: TestPostgresPassword,
		DatabaseSSLMode:  TestPostgresSSLMode,

		// Tokens
		TokenSecret:     "integration-test-secret-key",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 168 * time.Hour,
	}
}

// TestDatabaseConnection creates a direct pgx pool to the test database
func TestDatabaseConnection() (*pgxpool.Pool, error) {
	cfg := TestConfig()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create test database pool: %w", err)
	}

	return pool, nil
}

// WaitForDatabase waits until the test database accepts connections
func WaitForDatabase(ctx context.Context) error {
	deadline := time.Now().Add(30 * time.Second)

	for time.Now().Before(deadline) {
		pool, err := TestDatabaseConnection()
		if err == nil {
			pingErr := pool.Ping(ctx)
			pool.Close()
			if pingErr == nil {
				return nil
			}
		}
		time.Sleep(time.Second)
	}

	return fmt.Errorf("test database did not become ready within 30s")
}
