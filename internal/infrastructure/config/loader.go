package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable the service reads
const EnvPrefix = "TP"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// envOverrides maps environment variables onto config keys
var envOverrides = map[string]string{
	"TP_SERVER_HOST":             "server.host",
	"TP_SERVER_PORT":             "server.port",
	"TP_DB_DRIVER":               "database.driver",
	"TP_DB_HOST":                 "database.host",
	"TP_DB_PORT":                 "database.port",
	"TP_DB_USERNAME":             "database.username",
	"TP_DB_PASSWORD":             "database.password",
	"TP_DB_NAME":                 "database.database",
	"TP_DB_SSL_MODE":             "database.sslMode",
	"TP_DB_MAX_OPEN_CONNS":       "database.maxOpenConns",
	"TP_DB_MAX_IDLE_CONNS":       "database.maxIdleConns",
	"TP_DB_CONN_MAX_LIFETIME":    "database.connMaxLifetime",
	"TP_DB_CONN_MAX_IDLE_TIME":   "database.connMaxIdleTime",
	"TP_DB_ACQUIRE_TIMEOUT":      "database.acquireTimeout",
	"TP_DB_SLOW_QUERY_THRESHOLD": "database.slowQueryThreshold",
	"TP_DB_BUSY_TIMEOUT":         "database.busyTimeout",
	"TP_DB_RETRY_ATTEMPTS":       "database.retryAttempts",
	"TP_DB_RETRY_DELAY":          "database.retryDelay",
	"TP_DB_LOG_LEVEL":            "database.logLevel",
	"TP_DB_ENSURE_SCHEMA":        "database.ensureSchema",
	"TP_LOGGER_LEVEL":            "logger.level",
	"TP_LOGGER_FORMAT":           "logger.format",
	"TP_TRANSFER_DEMARCATION":    "transfer.demarcation",
}

// LoadConfig loads configuration for env. An empty env falls back to TP_ENVIRONMENT,
// then to development. The <env>.yaml file is optional; defaults and environment
// variables are enough to run.
func LoadConfig(env string) (*Config, error) {
	if err := loadDotEnvFile(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if env == "" {
		env = getEnvironment()
	}

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found on the search paths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return os.ErrNotExist
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.database", "transfer-processor.db")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.connMaxIdleTime", "15m")
	v.SetDefault("database.acquireTimeout", "3s")
	v.SetDefault("database.slowQueryThreshold", "200ms")
	v.SetDefault("database.busyTimeout", "5s")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", "1s")
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.ensureSchema", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("transfer.demarcation", "programmatic")
	v.SetDefault("transfer.blockedAccounts", []string{"ex"})
}

// getEnvironment gets the current environment from the environment variable
func getEnvironment() string {
	env := os.Getenv("TP_ENVIRONMENT")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config file values
func processEnvOverrides(v *viper.Viper) {
	for envName, key := range envOverrides {
		if value, ok := os.LookupEnv(envName); ok && value != "" {
			v.Set(key, value)
		}
	}
	if blocked := os.Getenv("TP_TRANSFER_BLOCKED_ACCOUNTS"); blocked != "" {
		v.Set("transfer.blockedAccounts", splitList(blocked))
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
