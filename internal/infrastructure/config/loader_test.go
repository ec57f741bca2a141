package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/usecase"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	conf, err := LoadConfig(Test)
	require.NoError(t, err)

	assert.Equal(t, Test, conf.Environment)
	assert.Equal(t, 8080, conf.Server.Port)
	assert.Equal(t, 10*time.Second, conf.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, 3*time.Second, conf.Database.AcquireTimeout)
	assert.True(t, conf.Database.EnsureSchema)
	assert.Equal(t, "programmatic", conf.Transfer.Demarcation)
	assert.Equal(t, []string{"ex"}, conf.Transfer.BlockedAccounts)
	assert.False(t, conf.IsProduction())
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	yaml := []byte(`
database:
  driver: postgres
  host: db.internal
  username: transfer
  password: secret
  database: transfers
  maxOpenConns: 4
transfer:
  demarcation: declarative
  seedAccounts:
    - id: memberA
      balance: 10000
    - id: memberB
      balance: 500
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "staging.yaml"), yaml, 0o644))

	t.Setenv("TP_DB_HOST", "db.override")
	t.Setenv("TP_DB_ACQUIRE_TIMEOUT", "250ms")
	t.Setenv("TP_TRANSFER_BLOCKED_ACCOUNTS", "ex, frozen")

	conf, err := LoadConfig("staging")
	require.NoError(t, err)

	assert.Equal(t, "postgres", conf.Database.Driver)
	assert.Equal(t, "db.override", conf.Database.Host)
	assert.Equal(t, 4, conf.Database.MaxOpenConns)
	assert.Equal(t, 250*time.Millisecond, conf.Database.AcquireTimeout)
	assert.Equal(t, "declarative", conf.Transfer.Demarcation)
	assert.Equal(t, []string{"ex", "frozen"}, conf.Transfer.BlockedAccounts)
	assert.Equal(t, []usecase.SeedAccount{{ID: "memberA", Balance: 10000}, {ID: "memberB", Balance: 500}}, conf.Transfer.SeedAccounts)
}

func TestLoadConfig_EnvironmentSelection(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TP_ENVIRONMENT", "Production")

	conf, err := LoadConfig("")
	require.NoError(t, err)
	assert.True(t, conf.IsProduction())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Server: ServerConfig{Port: 8080}, Transfer: TransferConfig{Demarcation: "none"}}
	assert.NoError(t, valid.Validate())

	badMode := valid
	badMode.Transfer.Demarcation = "xa"
	assert.Error(t, badMode.Validate())

	badPort := valid
	badPort.Server.Port = 0
	assert.Error(t, badPort.Validate())

	dupSeed := valid
	dupSeed.Transfer.SeedAccounts = []usecase.SeedAccount{{ID: "a"}, {ID: "a"}}
	assert.Error(t, dupSeed.Validate())
}
