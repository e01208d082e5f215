// Package storage defines the key-value contract the task repository persists
// through. Values are JSON documents; every backend stores and returns copies.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type Storage interface {
	// Save overwrites any previous value under key.
	Save(ctx context.Context, key string, value []byte) error
	// Load returns nil, nil when nothing was saved under key.
	Load(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Error wraps a backend failure.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Key: key, Err: err}
}

// Put marshals value to JSON and saves it.
func Put(ctx context.Context, s Storage, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return Wrap("save", key, fmt.Errorf("marshal: %w", err))
	}
	return s.Save(ctx, key, data)
}

// Get loads key into dst. found is false when the key is absent; a payload
// that does not decode into dst is returned as a plain decode error.
func Get(ctx context.Context, s Storage, key string, dst any) (found bool, err error) {
	data, err := s.Load(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return true, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}
