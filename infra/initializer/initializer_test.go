package initializer

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirasaad/atm/infra/repository/memory"
	"github.com/amirasaad/atm/pkg/config"
	"github.com/amirasaad/atm/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver, url string) *config.App {
	return &config.App{
		Env:   "test",
		Log:   &config.Log{Format: "text", Prefix: "[atm]", TimeFormat: time.Kitchen},
		DB:    &config.DB{Driver: driver, Url: url, ConnMaxLifetime: time.Hour},
		Redis: &config.Redis{URL: "redis://localhost:1/0", DialTimeout: 200 * time.Millisecond},
	}
}

func TestInitializeDependencies_Memory(t *testing.T) {
	var buf bytes.Buffer
	deps, cleanup, err := InitializeDependencies(testConfig(config.DriverMemory, ""), WithLogOutput(&buf))
	require.NoError(t, err)
	defer cleanup()

	assert.IsType(t, &memory.Directory{}, deps.Directory)
	assert.NotNil(t, deps.Logger)
	assert.Contains(t, buf.String(), "Account directory ready")
}

func TestInitializeDependencies_SQLite(t *testing.T) {
	url := filepath.Join(t.TempDir(), "atm.db")
	deps, cleanup, err := InitializeDependencies(testConfig(config.DriverSQLite, url), WithLogOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, deps.Directory.Create(ctx, repository.Record{ID: 1, Balance: 500}))
	rec, err := deps.Directory.Load(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(500), rec.Balance)
}

func TestInitializeDependencies_RedisUnreachable(t *testing.T) {
	_, _, err := InitializeDependencies(testConfig(config.DriverRedis, ""), WithLogOutput(&bytes.Buffer{}))
	assert.Error(t, err)
}

func TestSetupLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := setupLogger(&config.Log{Format: "json", Prefix: "[atm]"}, &buf)
	logger.Info("hello", "account_id", 7)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"account_id":7`)
}
