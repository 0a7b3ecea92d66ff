// Package memory provides an in-process account directory. It backs tests and
// the "memory" database driver; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/amirasaad/atm/pkg/repository"
)

// Directory is a map-backed repository.Directory safe for concurrent use.
type Directory struct {
	mu      sync.RWMutex
	records map[int64]repository.Record
}

// New returns an empty Directory, optionally seeded with records.
func New(seed ...repository.Record) *Directory {
	d := &Directory{records: make(map[int64]repository.Record, len(seed))}
	for _, rec := range seed {
		d.records[rec.ID] = clone(rec)
	}
	return d
}

// Load implements repository.Directory.
func (d *Directory) Load(_ context.Context, id int64) (*repository.Record, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rec, ok := d.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := clone(rec)
	return &out, nil
}

// Create implements repository.Directory.
func (d *Directory) Create(_ context.Context, rec repository.Record) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.records[rec.ID]; ok {
		return repository.ErrAlreadyExists
	}
	d.records[rec.ID] = clone(rec)
	return nil
}

// Save implements repository.Directory.
func (d *Directory) Save(_ context.Context, rec repository.Record) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.records[rec.ID]; !ok {
		return repository.ErrNotFound
	}
	d.records[rec.ID] = clone(rec)
	return nil
}

// Len returns the number of stored records.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.records)
}

func clone(rec repository.Record) repository.Record {
	if rec.LastActivity != nil {
		at := *rec.LastActivity
		rec.LastActivity = &at
	}
	return rec
}

var _ repository.Directory = (*Directory)(nil)
