package metrics

import (
	"context"
	"time"

	"todoList/internal/storage"
)

type instrumentedStorage struct {
	next    storage.Storage
	metrics *Metrics
}

// InstrumentStorage counts and times every call made to s.
func InstrumentStorage(s storage.Storage, m *Metrics) storage.Storage {
	return &instrumentedStorage{next: s, metrics: m}
}

func (s *instrumentedStorage) observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.metrics.StorageOps.WithLabelValues(op, result).Inc()
	s.metrics.StorageDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (s *instrumentedStorage) Save(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Save(ctx, key, value)
	s.observe("save", start, err)
	return err
}

func (s *instrumentedStorage) Load(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	data, err := s.next.Load(ctx, key)
	s.observe("load", start, err)
	return data, err
}

func (s *instrumentedStorage) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Remove(ctx, key)
	s.observe("remove", start, err)
	return err
}

func (s *instrumentedStorage) Clear(ctx context.Context) error {
	start := time.Now()
	err := s.next.Clear(ctx)
	s.observe("clear", start, err)
	return err
}
