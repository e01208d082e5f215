package memory

import (
	"bytes"
	"context"
	"sync"
)

type Storage struct {
	data map[string][]byte
	mtx  *sync.RWMutex
}

func New() *Storage {
	return &Storage{
		data: make(map[string][]byte),
		mtx:  &sync.RWMutex{},
	}
}

func (s *Storage) Save(ctx context.Context, key string, value []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.data[key] = bytes.Clone(value)
	return nil
}

func (s *Storage) Load(ctx context.Context, key string) ([]byte, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(value), nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.data, key)
	return nil
}

func (s *Storage) Clear(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	clear(s.data)
	return nil
}

func (s *Storage) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return len(s.data)
}
