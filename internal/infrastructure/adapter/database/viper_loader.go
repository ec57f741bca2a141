package database

import (
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/config"
)

// CreateConfigFromViperConfig adapts the application configuration to database configuration.
// Zero values keep the defaults of DefaultConfig.
func CreateConfigFromViperConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()
	src := conf.Database

	if src.Driver != "" {
		dbConf.Driver = src.Driver
	}
	if src.Host != "" {
		dbConf.Host = src.Host
	}
	if src.Port > 0 {
		dbConf.Port = src.Port
	}
	if src.Username != "" {
		dbConf.Username = src.Username
	}
	if src.Password != "" {
		dbConf.Password = src.Password
	}
	if src.Database != "" {
		dbConf.Database = src.Database
	}
	if src.SSLMode != "" {
		dbConf.SSLMode = src.SSLMode
	}
	if src.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = src.ConnMaxIdleTime
	}
	if src.AcquireTimeout > 0 {
		dbConf.AcquireTimeout = src.AcquireTimeout
	}
	if src.SlowQueryThreshold > 0 {
		dbConf.SlowQueryThreshold = src.SlowQueryThreshold
	}
	if src.BusyTimeout > 0 {
		dbConf.BusyTimeout = src.BusyTimeout
	}
	if src.RetryAttempts > 0 {
		dbConf.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbConf.RetryDelay = src.RetryDelay
	}
	if src.LogLevel != "" {
		dbConf.LogLevel = src.LogLevel
	}

	return dbConf
}
