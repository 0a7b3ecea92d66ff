package account

import (
	"time"

	"gorm.io/gorm"
)

// Account represents an account record in the database.
type Account struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	Balance      int64  `gorm:"not null"` // cents
	PINHash      string `gorm:"column:pin_hash;type:varchar(72);not null"`
	LastActivity *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Migrate creates or updates the accounts table. Used for SQLite; Postgres
// schemas are managed by the SQL migrations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Account{})
}
