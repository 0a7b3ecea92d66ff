package account

import (
	"context"

	infrarepo "github.com/amirasaad/atm/infra/repository"
	"github.com/amirasaad/atm/pkg/repository"
	"gorm.io/gorm"
)

type directory struct {
	db *gorm.DB
}

// New creates an account directory backed by the provided *gorm.DB.
// Each call borrows a pooled connection for its statement only.
func New(db *gorm.DB) repository.Directory {
	return &directory{db: db}
}

// Load implements repository.Directory.
func (r *directory) Load(ctx context.Context, id int64) (*repository.Record, error) {
	var m Account
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToRecord(&m), nil
}

// Create implements repository.Directory.
func (r *directory) Create(ctx context.Context, rec repository.Record) error {
	m := mapRecordToModel(rec)
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	})
}

// Save implements repository.Directory.
func (r *directory) Save(ctx context.Context, rec repository.Record) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", rec.ID).
		Updates(mapRecordToUpdates(rec))
	if res.Error != nil {
		return infrarepo.MapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func mapRecordToModel(rec repository.Record) Account {
	return Account{
		ID:           rec.ID,
		Balance:      rec.Balance,
		PINHash:      rec.PINHash,
		LastActivity: rec.LastActivity,
	}
}

// mapRecordToUpdates lists the mutable columns. A map is used so zero values
// are written too.
func mapRecordToUpdates(rec repository.Record) map[string]any {
	return map[string]any{
		"balance":       rec.Balance,
		"pin_hash":      rec.PINHash,
		"last_activity": rec.LastActivity,
	}
}

func mapModelToRecord(m *Account) *repository.Record {
	return &repository.Record{
		ID:           m.ID,
		Balance:      m.Balance,
		PINHash:      m.PINHash,
		LastActivity: m.LastActivity,
	}
}
