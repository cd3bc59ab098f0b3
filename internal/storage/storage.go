package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrKeyNotFound reports that a key has no value in the store. It is kept
// distinct from I/O failures so callers can tell "absent" from "failed".
var ErrKeyNotFound = errors.New("key not found")

// Store is a persistent string-keyed store. Implementations namespace every
// key with a fixed prefix, return ErrKeyNotFound from Get when the key is
// absent, and wrap driver failures instead of swallowing them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON reads key and decodes its JSON value into out.
func GetJSON(ctx context.Context, s Store, key string, out any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes value as JSON and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
