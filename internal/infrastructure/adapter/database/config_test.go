package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_WithCopies(t *testing.T) {
	base := &Config{Driver: DriverSQLite, Database: "transfers.db", MaxOpenConns: 10, AcquireTimeout: 3 * time.Second}

	narrowed := base.WithMaxOpenConnections(1).WithAcquireTimeout(50 * time.Millisecond)

	assert.Equal(t, 1, narrowed.MaxOpenConns)
	assert.Equal(t, 50*time.Millisecond, narrowed.AcquireTimeout)
	assert.Equal(t, 10, base.MaxOpenConns)
	assert.Equal(t, 3*time.Second, base.AcquireTimeout)
	assert.Equal(t, base.Database, narrowed.Database)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Driver:       DriverSQLite,
			Database:     "transfers.db",
			MaxOpenConns: 4,
			MaxIdleConns: 4,
			LogLevel:     "warn",
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid sqlite", func(c *Config) {}, false},
		{"Unknown driver", func(c *Config) { c.Driver = "oracle" }, true},
		{"Missing sqlite path", func(c *Config) { c.Database = "" }, true},
		{"Postgres without host", func(c *Config) { c.Driver = DriverPostgres }, true},
		{"No connections", func(c *Config) { c.MaxOpenConns = 0 }, true},
		{"Negative acquire timeout", func(c *Config) { c.AcquireTimeout = -time.Second }, true},
		{"Bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	sqlite := &Config{Driver: DriverSQLite, Database: "/tmp/transfers.db", BusyTimeout: 5 * time.Second}
	assert.Equal(t, "file:/tmp/transfers.db?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate&_foreign_keys=on", sqlite.DSN())

	pg := &Config{Driver: DriverPostgres, Host: "db", Port: 5432, Username: "u", Password: "p", Database: "transfers", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=transfers sslmode=disable", pg.DSN())
}
