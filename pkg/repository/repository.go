// Package repository defines the persistence contracts consumed by the ledger.
package repository

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no record exists for an account id.
	ErrNotFound = errors.New("account not found")

	// ErrAlreadyExists is returned when creating a record for an id that is taken.
	ErrAlreadyExists = errors.New("account already exists")
)

// Record is the stored form of one account.
type Record struct {
	ID           int64
	Balance      int64      // cents
	PINHash      string     // empty when no PIN is set
	LastActivity *time.Time // nil until the first accepted deposit or withdrawal
}

// Directory maps account ids to their stored records.
//
// Implementations must make each call self-contained: resources needed for a
// call are acquired and released within it.
type Directory interface {
	// Load returns the record for id, or ErrNotFound.
	Load(ctx context.Context, id int64) (*Record, error)

	// Create inserts a new record, or fails with ErrAlreadyExists leaving the
	// existing record untouched.
	Create(ctx context.Context, rec Record) error

	// Save overwrites the mutable fields of an existing record, or fails with
	// ErrNotFound.
	Save(ctx context.Context, rec Record) error
}
