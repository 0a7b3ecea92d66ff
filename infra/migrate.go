package infra

import (
	"errors"
	"fmt"

	accountrepo "github.com/amirasaad/atm/infra/repository/account"
	"github.com/amirasaad/atm/internal/migrations"
	"github.com/amirasaad/atm/pkg/config"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// Migrate brings the accounts schema up to date for driver.
func Migrate(db *gorm.DB, driver string) error {
	switch driver {
	case config.DriverPostgres:
		return RunMigrations(db)
	case config.DriverSQLite:
		return accountrepo.Migrate(db)
	default:
		return fmt.Errorf("driver %q has no SQL schema", driver)
	}
}

// RunMigrations applies the embedded SQL migrations to a Postgres database.
func RunMigrations(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
