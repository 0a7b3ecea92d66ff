package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	accountrepo "github.com/amirasaad/atm/infra/repository/account"
	"github.com/amirasaad/atm/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var columns = []string{"id", "balance", "pin_hash", "last_activity", "created_at", "updated_at"}

func newMockDirectory(t *testing.T) (repository.Directory, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return accountrepo.New(db), mock
}

func TestDirectory_Load(t *testing.T) {
	t.Parallel()
	dir, mock := newMockDirectory(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 (.+) LIMIT \$2`).
		WithArgs(int64(7), 1).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(7), int64(10000), "$2a$04$hash", now, now, now))

	rec, err := dir.Load(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, int64(10000), rec.Balance)
	assert.Equal(t, "$2a$04$hash", rec.PINHash)
	require.NotNil(t, rec.LastActivity)
	assert.True(t, now.Equal(*rec.LastActivity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectory_Load_NoActivity(t *testing.T) {
	t.Parallel()
	dir, mock := newMockDirectory(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 (.+) LIMIT \$2`).
		WithArgs(int64(3), 1).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(3), int64(0), "", nil, now, now))

	rec, err := dir.Load(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, rec.PINHash)
	assert.Nil(t, rec.LastActivity)
}

func TestDirectory_Load_NotFound(t *testing.T) {
	t.Parallel()
	dir, mock := newMockDirectory(t)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 (.+) LIMIT \$2`).
		WithArgs(int64(99), 1).
		WillReturnRows(sqlmock.NewRows(columns))

	rec, err := dir.Load(context.Background(), 99)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectory_Load_QueryError(t *testing.T) {
	t.Parallel()
	dir, mock := newMockDirectory(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT \* FROM "accounts"`).WillReturnError(boom)

	_, err := dir.Load(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestDirectory_Create(t *testing.T) {
	t.Parallel()
	dir, mock := newMockDirectory(t)
	rec := repository.Record{ID: 7, Balance: 10000, PINHash: "$2a$04$hash"}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, dir.Create(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectory_Create_Duplicate(t *testing.T) {
	t.Parallel()
	dir, mock := newMockDirectory(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := dir.Create(context.Background(), repository.Record{ID: 7})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectory_Save(t *testing.T) {
	t.Parallel()
	dir, mock := newMockDirectory(t)
	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := dir.Save(context.Background(), repository.Record{ID: 7, Balance: 5000, LastActivity: &at})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectory_Save_NotFound(t *testing.T) {
	t.Parallel()
	dir, mock := newMockDirectory(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := dir.Save(context.Background(), repository.Record{ID: 42})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDirectory_Save_Error(t *testing.T) {
	t.Parallel()
	dir, mock := newMockDirectory(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+)`).
		WillReturnError(errors.New("update error"))
	mock.ExpectRollback()

	err := dir.Save(context.Background(), repository.Record{ID: 7})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}
