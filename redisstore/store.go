// Package redisstore persists wallets as documents stored under Redis keys.
//
// It is an alternative to the file based wallet.Save and wallet.Load: the
// document is the same, only the destination changes from a path to a key.
package redisstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/redis/go-redis/v9"
)

// Store reads and writes wallet documents in Redis.
type Store struct {
	client *redis.Client
}

// New returns a Store using client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Dial configures a Redis client from a redis:// URL and verifies connectivity.
func Dial(ctx context.Context, url string) (*Store, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is required")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping redis: %w", wallet.ErrIO, err)
	}
	return New(client), nil
}

// Close closes the underlying client.
func (s *Store) Close() error { return s.client.Close() }

// Save replaces the document stored under key. Failures wrap wallet.ErrIO.
func (s *Store) Save(ctx context.Context, w *wallet.Wallet, key string) error {
	var buf bytes.Buffer
	if err := wallet.Encode(&buf, w); err != nil {
		return err
	}
	if err := s.client.Set(ctx, key, buf.Bytes(), 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %q: %w", wallet.ErrIO, key, err)
	}
	return nil
}

// Load reads the document stored under key.
//
// A missing key is reported as wallet.ErrNotFound, an invalid document as
// wallet.ErrCorruptData and any other failure wraps wallet.ErrIO.
func (s *Store) Load(ctx context.Context, key string) (*wallet.Wallet, error) {
	content, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: redis key %q", wallet.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis get %q: %w", wallet.ErrIO, key, err)
	}
	w, err := wallet.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("redis key %q: %w", key, err)
	}
	return w, nil
}
