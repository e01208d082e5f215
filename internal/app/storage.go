package app

import (
	"context"
	"fmt"

	"todoList/internal/config"
	"todoList/internal/handlers"
	"todoList/internal/logger"
	"todoList/internal/storage"
	"todoList/internal/storage/memory"
	"todoList/internal/storage/postgres"
	"todoList/internal/storage/redis"
	"todoList/internal/storage/sqlite"

	"go.uber.org/zap"
)

// backend is an opened storage plus the hooks the app needs around it.
// checker is nil for backends without a remote connection.
type backend struct {
	storage storage.Storage
	checker handlers.HealthChecker
	close   func()
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (*backend, error) {
	logger.Info("Storage: Opening backend", zap.String("type", cfg.Type))

	switch cfg.Type {
	case config.StorageMemory:
		return &backend{storage: memory.New(), close: func() {}}, nil

	case config.StorageRedis:
		s, err := redis.New(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis storage: %w", err)
		}
		return &backend{storage: s, checker: s, close: func() {
			if err := s.Close(); err != nil {
				logger.Error("Storage: Failed to close Redis client", err)
			}
		}}, nil

	case config.StoragePostgres:
		s, err := postgres.New(ctx, postgres.Options{
			URL:            cfg.Postgres.URL,
			MaxConnections: cfg.Postgres.MaxConnections,
			MinConnections: cfg.Postgres.MinConnections,
			IdleTimeout:    cfg.Postgres.IdleTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		return &backend{storage: s, checker: s, close: s.Close}, nil

	case config.StorageSQLite:
		s, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return &backend{storage: s, close: func() {
			if err := s.Close(); err != nil {
				logger.Error("Storage: Failed to close SQLite database", err)
			}
		}}, nil

	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
