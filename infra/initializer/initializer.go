package initializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/amirasaad/atm/infra"
	accountrepo "github.com/amirasaad/atm/infra/repository/account"
	"github.com/amirasaad/atm/infra/repository/memory"
	redisdir "github.com/amirasaad/atm/infra/repository/redis"
	"github.com/amirasaad/atm/pkg/config"
	"github.com/amirasaad/atm/pkg/repository"
	"github.com/redis/go-redis/v9"
)

// Option customizes InitializeDependencies.
type Option func(*options)

type options struct {
	logOutput io.Writer
}

// WithLogOutput sends log output to w instead of stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// InitializeDependencies builds the logger and the account directory selected
// by cfg. The returned cleanup releases the directory's connections.
func InitializeDependencies(cfg *config.App, opts ...Option) (
	deps *config.Deps,
	cleanup func(),
	err error,
) {
	o := options{logOutput: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	logger := setupLogger(cfg.Log, o.logOutput)

	dir, cleanup, err := newDirectory(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize account directory", "driver", cfg.DB.Driver, "error", err)
		return nil, nil, err
	}
	logger.Info("Account directory ready", "driver", cfg.DB.Driver)

	return &config.Deps{
		Directory: dir,
		Logger:    logger,
		Config:    cfg,
	}, cleanup, nil
}

func newDirectory(cfg *config.App, logger *slog.Logger) (repository.Directory, func(), error) {
	switch cfg.DB.Driver {
	case config.DriverMemory:
		return memory.New(), func() {}, nil

	case config.DriverRedis:
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		opt.PoolSize = cfg.Redis.PoolSize
		opt.DialTimeout = cfg.Redis.DialTimeout
		opt.ReadTimeout = cfg.Redis.ReadTimeout
		opt.WriteTimeout = cfg.Redis.WriteTimeout

		dir := redisdir.NewWithClient(redis.NewClient(opt), cfg.Redis.KeyPrefix, logger)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
		defer cancel()
		if err := dir.Ping(ctx); err != nil {
			_ = dir.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return dir, func() { _ = dir.Close() }, nil

	default:
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() { _ = sqlDB.Close() }

		start := time.Now()
		if err := infra.Migrate(db, cfg.DB.Driver); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("migrate database: %w", err)
		}
		logger.Debug("Database schema up to date", "took", time.Since(start))
		return accountrepo.New(db), cleanup, nil
	}
}
