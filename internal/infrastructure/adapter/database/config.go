package database

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver             string        `mapstructure:"db_driver"`
	Host               string        `mapstructure:"db_host"`
	Port               int           `mapstructure:"db_port"`
	Username           string        `mapstructure:"db_username"`
	Password           string        `mapstructure:"db_password"`
	Database           string        `mapstructure:"db_name"`
	SSLMode            string        `mapstructure:"db_ssl_mode"`
	MaxOpenConns       int           `mapstructure:"db_max_open_conns"`
	MaxIdleConns       int           `mapstructure:"db_max_idle_conns"`
	ConnMaxLifetime    time.Duration `mapstructure:"db_conn_max_lifetime"`
	ConnMaxIdleTime    time.Duration `mapstructure:"db_conn_max_idle_time"`
	AcquireTimeout     time.Duration `mapstructure:"db_acquire_timeout"`
	SlowQueryThreshold time.Duration `mapstructure:"db_slow_query_threshold"`
	BusyTimeout        time.Duration `mapstructure:"db_busy_timeout"`
	LogLevel           string        `mapstructure:"db_log_level"`
	RetryAttempts      int           `mapstructure:"db_retry_attempts"`
	RetryDelay         time.Duration `mapstructure:"db_retry_delay"`
}

// DefaultConfig returns a Config with default values
// No sensitive information is hardcoded - all must come from environment variables
func DefaultConfig() *Config {
	return &Config{
		Driver:             configEnvOrDefault("TP_DB_DRIVER", DriverPostgres),
		Host:               configEnv("TP_DB_HOST"),
		Port:               configEnvAsInt("TP_DB_PORT", 5432),
		Username:           configEnv("TP_DB_USERNAME"),
		Password:           configEnv("TP_DB_PASSWORD"),
		Database:           configEnv("TP_DB_NAME"),
		SSLMode:            configEnvOrDefault("TP_DB_SSL_MODE", "disable"),
		MaxOpenConns:       configEnvAsInt("TP_DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:       configEnvAsInt("TP_DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime:    configEnvAsDuration("TP_DB_CONN_MAX_LIFETIME", 5*time.Minute),
		ConnMaxIdleTime:    configEnvAsDuration("TP_DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		AcquireTimeout:     configEnvAsDuration("TP_DB_ACQUIRE_TIMEOUT", 3*time.Second),
		SlowQueryThreshold: configEnvAsDuration("TP_DB_SLOW_QUERY_THRESHOLD", 200*time.Millisecond),
		BusyTimeout:        configEnvAsDuration("TP_DB_BUSY_TIMEOUT", 5*time.Second),
		LogLevel:           configEnvOrDefault("TP_DB_LOG_LEVEL", "warn"),
		RetryAttempts:      configEnvAsInt("TP_DB_RETRY_ATTEMPTS", 3),
		RetryDelay:         configEnvAsDuration("TP_DB_RETRY_DELAY", 2*time.Second),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if err := c.validateServer(); err != nil {
			return err
		}
	case DriverSQLite:
		if c.Database == "" {
			return errors.New("sqlite database path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.AcquireTimeout < 0 {
		return errors.New("acquire timeout must be non-negative")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

func (c *Config) validateServer() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Password == "" {
		return errors.New("database password is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}
	return nil
}

// DSN returns the database connection string for the configured driver.
// SQLite connections take the write lock when their transaction begins so that
// concurrent units of work queue on the busy timeout instead of failing on upgrade.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return fmt.Sprintf(
			"file:%s?_busy_timeout=%d&_journal_mode=WAL&_txlock=immediate&_foreign_keys=on",
			c.Database, c.BusyTimeout.Milliseconds(),
		)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// WithMaxOpenConnections returns a copy of the config with updated max open connections
func (c *Config) WithMaxOpenConnections(max int) *Config {
	newConfig := *c
	newConfig.MaxOpenConns = max
	return &newConfig
}

// WithAcquireTimeout returns a copy of the config with updated acquire timeout
func (c *Config) WithAcquireTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.AcquireTimeout = timeout
	return &newConfig
}

// Helper functions for environment variables

// configEnv gets a value from environment variables with no default
// Returns an empty string if not found
func configEnv(key string) string {
	return os.Getenv(key)
}

// configEnvOrDefault gets a value from environment variables with a default value
func configEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// configEnvAsInt gets an integer value from environment variables with a default
func configEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// configEnvAsDuration gets a duration such as "250ms" from environment variables with a default
func configEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
