package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todoList/internal/logger"
	"todoList/internal/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix namespaces every key so Clear never touches foreign data.
	Prefix string
}

type Storage struct {
	client *redis.Client
	prefix string
}

var ErrEmptyPrefix = errors.New("redis key prefix cannot be empty")

func New(ctx context.Context, opts Options) (*Storage, error) {
	if opts.Prefix == "" {
		return nil, ErrEmptyPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Storage: Redis ping failed", err, zap.String("addr", opts.Addr))
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info("Storage: Connected to Redis", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
	return &Storage{client: client, prefix: opts.Prefix}, nil
}

func (s *Storage) key(key string) string {
	return s.prefix + key
}

func (s *Storage) Save(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		logger.Error("Storage: Redis SET failed", err, zap.String("key", key), zap.Duration("ms", time.Since(start)))
		return storage.Wrap("save", key, err)
	}
	return nil
}

func (s *Storage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Error("Storage: Redis GET failed", err, zap.String("key", key))
		return nil, storage.Wrap("load", key, err)
	}
	return data, nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return storage.Wrap("remove", key, err)
	}
	return nil
}

func (s *Storage) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return storage.Wrap("clear", "", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return storage.Wrap("clear", "", err)
	}
	logger.Debug("Storage: Redis keys cleared", zap.Int("count", len(keys)))
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Storage) Close() error {
	logger.Info("Storage: Closing Redis client")
	return s.client.Close()
}
