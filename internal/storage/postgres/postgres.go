package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todoList/internal/logger"
	"todoList/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Options struct {
	URL            string
	MaxConnections int32
	MinConnections int32
	IdleTimeout    time.Duration
}

const slowQuery = 100 * time.Millisecond

const createTable = `CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type Storage struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, opts Options) (*Storage, error) {
	config, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		logger.Error("Storage: Failed to parse PostgreSQL config", err)
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if opts.MaxConnections > 0 {
		config.MaxConns = opts.MaxConnections
	}
	if opts.MinConnections > 0 {
		config.MinConns = opts.MinConnections
	}
	if opts.IdleTimeout > 0 {
		config.MaxConnIdleTime = opts.IdleTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Storage: Failed to create pool", err)
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("Storage: PostgreSQL ping failed", err)
		return nil, fmt.Errorf("ping: %w", err)
	}

	if _, err := pool.Exec(ctx, createTable); err != nil {
		pool.Close()
		logger.Error("Storage: Failed to create kv_store table", err)
		return nil, fmt.Errorf("create table: %w", err)
	}

	logger.Info("Storage: Connected to PostgreSQL")
	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
	logger.Info("Storage: Closed all PostgreSQL connections")
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Save(ctx context.Context, key string, value []byte) error {
	start := time.Now()

	query := `INSERT INTO kv_store (key, value, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE
			SET value = EXCLUDED.value,
				updated_at = NOW()`

	if _, err := s.pool.Exec(ctx, query, key, string(value)); err != nil {
		logger.Error("Storage: Failed to save value", err, zap.String("key", key), zap.Duration("ms", time.Since(start)))
		return storage.Wrap("save", key, err)
	}

	warnSlow(start, "save")
	return nil
}

func (s *Storage) Load(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()

	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("Storage: Failed to load value", err, zap.String("key", key))
		return nil, storage.Wrap("load", key, err)
	}

	warnSlow(start, "load")
	return value, nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return storage.Wrap("remove", key, err)
	}
	return nil
}

func (s *Storage) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store`); err != nil {
		return storage.Wrap("clear", "", err)
	}
	return nil
}

func warnSlow(start time.Time, op string) {
	if d := time.Since(start); d > slowQuery {
		logger.Warn("Storage: Slow query", zap.String("op", op), zap.Duration("ms", d))
	}
}
