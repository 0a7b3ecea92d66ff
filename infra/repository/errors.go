// Package repository holds the gorm-backed persistence shared by the
// directory implementations.
package repository

import (
	"errors"

	"github.com/amirasaad/atm/pkg/repository"
	"gorm.io/gorm"
)

// MapGormError converts GORM errors to repository errors.
// This keeps database errors within the infrastructure layer; errors with no
// mapping are returned unchanged.
func MapGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	}
	return err
}

// WrapError runs a GORM operation and maps its error.
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(&m).Error
//	})
func WrapError(op func() error) error {
	return MapGormError(op())
}
