// Package redis provides an account directory stored as JSON documents in
// Redis, one key per account.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/amirasaad/atm/pkg/repository"
	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces account keys.
const DefaultPrefix = "atm:account:"

type document struct {
	ID           int64      `json:"id"`
	Balance      int64      `json:"balance"`
	PINHash      string     `json:"pin_hash,omitempty"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// Directory implements repository.Directory on a Redis client.
type Directory struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// New creates a Directory from a redis:// URL.
func New(url, prefix string, logger *slog.Logger) (*Directory, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewWithClient(redis.NewClient(opt), prefix, logger), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, prefix string, logger *slog.Logger) *Directory {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{client: client, prefix: prefix, logger: logger}
}

func (d *Directory) key(id int64) string {
	return d.prefix + strconv.FormatInt(id, 10)
}

// Ping checks connectivity.
func (d *Directory) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (d *Directory) Close() error {
	return d.client.Close()
}

// Load implements repository.Directory.
func (d *Directory) Load(ctx context.Context, id int64) (*repository.Record, error) {
	val, err := d.client.Get(ctx, d.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		d.logger.Error("Redis directory get error", "id", id, "error", err)
		return nil, err
	}
	var doc document
	if err := json.Unmarshal(val, &doc); err != nil {
		return nil, fmt.Errorf("decode account %d: %w", id, err)
	}
	return &repository.Record{
		ID:           doc.ID,
		Balance:      doc.Balance,
		PINHash:      doc.PINHash,
		LastActivity: doc.LastActivity,
	}, nil
}

// Create implements repository.Directory.
func (d *Directory) Create(ctx context.Context, rec repository.Record) error {
	data, err := encode(rec)
	if err != nil {
		return err
	}
	ok, err := d.client.SetNX(ctx, d.key(rec.ID), data, 0).Result()
	if err != nil {
		d.logger.Error("Redis directory create error", "id", rec.ID, "error", err)
		return err
	}
	if !ok {
		return repository.ErrAlreadyExists
	}
	return nil
}

// Save implements repository.Directory.
func (d *Directory) Save(ctx context.Context, rec repository.Record) error {
	data, err := encode(rec)
	if err != nil {
		return err
	}
	ok, err := d.client.SetXX(ctx, d.key(rec.ID), data, 0).Result()
	if err != nil {
		d.logger.Error("Redis directory save error", "id", rec.ID, "error", err)
		return err
	}
	if !ok {
		return repository.ErrNotFound
	}
	return nil
}

func encode(rec repository.Record) ([]byte, error) {
	data, err := json.Marshal(document{
		ID:           rec.ID,
		Balance:      rec.Balance,
		PINHash:      rec.PINHash,
		LastActivity: rec.LastActivity,
	})
	if err != nil {
		return nil, fmt.Errorf("encode account %d: %w", rec.ID, err)
	}
	return data, nil
}

var _ repository.Directory = (*Directory)(nil)
