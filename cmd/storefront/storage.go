package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopledger/internal/config"
	"github.com/nikolayk812/shopledger/internal/port"
	"github.com/nikolayk812/shopledger/internal/repository"
	"github.com/nikolayk812/shopledger/internal/storage"
	"github.com/redis/go-redis/v9"
)

// storageOpener is replaced in tests to observe connection lifetimes.
var storageOpener = openStorage

// openStorage returns the owner's key-value store for the configured driver
// and a func releasing its connections.
func openStorage(ctx context.Context, cfg config.Storage, owner string) (port.Storage, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return storage.NewMemory(), func() {}, nil

	case config.DriverFile:
		s, err := storage.NewFile(filepath.Join(cfg.Dir, owner))
		if err != nil {
			return nil, nil, fmt.Errorf("storage.NewFile: %w", err)
		}
		return s, func() {}, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("client.Ping: %w", err)
		}
		s := storage.NewRedis(client, cfg.RedisPrefix+owner+":", cfg.Timeout)
		return s, func() { _ = client.Close() }, nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pool.Ping: %w", err)
		}

		repo, err := repository.NewSnapshot(pool, owner)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("repository.NewSnapshot: %w", err)
		}
		return storage.NewDurable(repo, cfg.Timeout), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("storage.driver[%s] is not supported", cfg.Driver)
	}
}
