package infra_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirasaad/atm/infra"
	accountrepo "github.com/amirasaad/atm/infra/repository/account"
	"github.com/amirasaad/atm/pkg/config"
	"github.com/amirasaad/atm/pkg/repository"
	"github.com/amirasaad/atm/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func exerciseDirectory(t *testing.T, dir repository.Directory) {
	t.Helper()
	ctx := context.Background()

	_, err := dir.Load(ctx, 7)
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, dir.Create(ctx, repository.Record{ID: 7, Balance: 10000, PINHash: "hash"}))
	assert.ErrorIs(t, dir.Create(ctx, repository.Record{ID: 7, Balance: 1}), repository.ErrAlreadyExists)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, dir.Save(ctx, repository.Record{ID: 7, Balance: 12000, PINHash: "hash2", LastActivity: &at}))
	assert.ErrorIs(t, dir.Save(ctx, repository.Record{ID: 8}), repository.ErrNotFound)

	rec, err := dir.Load(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), rec.Balance)
	assert.Equal(t, "hash2", rec.PINHash)
	require.NotNil(t, rec.LastActivity)
	assert.True(t, at.Equal(*rec.LastActivity))
}

func TestNewDBConnection_SQLite(t *testing.T) {
	cfg := &config.DB{
		Driver:          config.DriverSQLite,
		Url:             filepath.Join(t.TempDir(), "atm.db"),
		ConnMaxLifetime: time.Hour,
	}
	db, err := infra.NewDBConnection(cfg, "test")
	require.NoError(t, err)
	t.Cleanup(func() { closeDB(t, db) })

	require.NoError(t, infra.Migrate(db, cfg.Driver))
	// Migrating twice is a no-op.
	require.NoError(t, infra.Migrate(db, cfg.Driver))

	exerciseDirectory(t, accountrepo.New(db))
}

func TestNewDBConnection_Errors(t *testing.T) {
	_, err := infra.NewDBConnection(&config.DB{Driver: config.DriverSQLite}, "test")
	assert.Error(t, err)

	_, err = infra.NewDBConnection(&config.DB{Driver: config.DriverRedis, Url: "redis://x"}, "test")
	assert.Error(t, err)
}

func TestNewDBConnection_Postgres(t *testing.T) {
	dsn := testutils.StartPostgres(t)

	cfg := &config.DB{
		Driver:          config.DriverPostgres,
		Url:             dsn,
		MaxOpenConns:    5,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	}
	db, err := infra.NewDBConnection(cfg, "test")
	require.NoError(t, err)
	t.Cleanup(func() { closeDB(t, db) })

	require.NoError(t, infra.Migrate(db, cfg.Driver))
	require.NoError(t, infra.RunMigrations(db))

	exerciseDirectory(t, accountrepo.New(db))
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	_ = sqlDB.Close()
}
