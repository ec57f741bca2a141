package config

import (
	"time"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/usecase"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Transfer    TransferConfig `mapstructure:"transfer"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver             string        `mapstructure:"driver"`
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	Username           string        `mapstructure:"username"`
	Password           string        `mapstructure:"password"`
	Database           string        `mapstructure:"database"`
	SSLMode            string        `mapstructure:"sslMode"`
	MaxOpenConns       int           `mapstructure:"maxOpenConns"`
	MaxIdleConns       int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime    time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime    time.Duration `mapstructure:"connMaxIdleTime"`
	AcquireTimeout     time.Duration `mapstructure:"acquireTimeout"`
	SlowQueryThreshold time.Duration `mapstructure:"slowQueryThreshold"`
	BusyTimeout        time.Duration `mapstructure:"busyTimeout"`
	RetryAttempts      int           `mapstructure:"retryAttempts"`
	RetryDelay         time.Duration `mapstructure:"retryDelay"`
	LogLevel           string        `mapstructure:"logLevel"`
	EnsureSchema       bool          `mapstructure:"ensureSchema"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TransferConfig contains transfer processing settings
type TransferConfig struct {
	// Demarcation is "programmatic", "declarative" or "none"
	Demarcation     string                `mapstructure:"demarcation"`
	BlockedAccounts []string              `mapstructure:"blockedAccounts"`
	SeedAccounts    []usecase.SeedAccount `mapstructure:"seedAccounts"`
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
