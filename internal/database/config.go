package database

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultConnectAttempts = 5
	defaultRetryDelay      = time.Second
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URL is a full postgres connection URL; when set it wins over the discrete fields
	URL string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration. ":memory:" opens a private in-memory database.
	Path string

	// ConnectAttempts and RetryDelay bound startup retries; zero means the defaults.
	// The delay doubles after each failed attempt.
	ConnectAttempts int
	RetryDelay      time.Duration
}

func (c *DatabaseConfig) retryPolicy() (int, time.Duration) {
	if c.IsInMemory() {
		return 1, 0
	}
	attempts, delay := c.ConnectAttempts, c.RetryDelay
	if attempts <= 0 {
		attempts = defaultConnectAttempts
	}
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	return attempts, delay
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URL: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, maskURL(c.URL), c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		return c.Path
	default:
		return ""
	}
}

// IsInMemory reports whether the config points at a throwaway sqlite database
func (c *DatabaseConfig) IsInMemory() bool {
	return (c.Driver == "sqlite" || c.Driver == "") && c.Path == ":memory:"
}

func maskURL(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}
	if parsed.User != nil {
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}
	return parsed.String()
}
