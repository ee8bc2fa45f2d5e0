package database

import (
	"fmt"
	"net/url"
	"strings"
)

// Supported drivers, selected from the DATABASE_URL scheme
const (
	DriverMongo    = "mongodb"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// defaultDatabaseName is used when neither DATABASE_NAME nor the URL path names a database
const defaultDatabaseName = "pizza"

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the store adapter (mongodb, postgres, sqlite)
	Driver string

	// URL is the connection string as given in DATABASE_URL
	URL string

	// Name is the logical database name
	Name string

	// SQLite-specific configuration
	Path string
}

// NewDatabaseConfig derives the adapter configuration from a connection URL and an optional database name
func NewDatabaseConfig(rawURL, name string) (DatabaseConfig, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return DatabaseConfig{}, fmt.Errorf("database URL is empty")
	}

	// SQLite paths are not always valid URLs (sqlite::memory:, file:pizza.db?cache=shared)
	switch {
	case strings.HasPrefix(rawURL, "sqlite://"):
		path := strings.TrimPrefix(rawURL, "sqlite://")
		return sqliteConfig(rawURL, path, name), nil
	case strings.HasPrefix(rawURL, "sqlite:"):
		path := strings.TrimPrefix(rawURL, "sqlite:")
		return sqliteConfig(rawURL, path, name), nil
	case strings.HasPrefix(rawURL, "file:"):
		return sqliteConfig(rawURL, rawURL, name), nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid database URL: %w", err)
	}

	cfg := DatabaseConfig{URL: rawURL, Name: name}
	switch strings.ToLower(parsed.Scheme) {
	case "mongodb", "mongodb+srv":
		cfg.Driver = DriverMongo
	case "postgres", "postgresql":
		cfg.Driver = DriverPostgres
	default:
		return DatabaseConfig{}, fmt.Errorf("unsupported database scheme: %q (supported: mongodb, mongodb+srv, postgres, postgresql, sqlite, file)", parsed.Scheme)
	}

	if cfg.Name == "" {
		cfg.Name = strings.Trim(parsed.Path, "/")
	}
	if cfg.Name == "" {
		cfg.Name = defaultDatabaseName
	}
	return cfg, nil
}

func sqliteConfig(rawURL, path, name string) DatabaseConfig {
	if name == "" {
		name = path
	}
	return DatabaseConfig{Driver: DriverSQLite, URL: rawURL, Name: name, Path: path}
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URL: %s, Name: %s, Path: %s}",
		c.Driver, MaskURL(c.URL), c.Name, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case DriverPostgres, DriverMongo:
		return c.URL
	case DriverSQLite:
		return c.Path
	default:
		return ""
	}
}

// MaskURL masks the password in a connection URL
func MaskURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}
