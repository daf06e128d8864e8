package cmd

import (
	"context"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/redisstore"
)

// Store is where the wallet document is kept.
type Store interface {
	Load(ctx context.Context) (*wallet.Wallet, error)
	Save(ctx context.Context, w *wallet.Wallet) error
	Close() error
	String() string
}

// OpenStore returns the store selected by c: Redis when c.RedisURL is set, a
// file otherwise.
func OpenStore(ctx context.Context, c Config) (Store, error) {
	if c.RedisURL == "" {
		logger.Debug().Str("file", c.File).Msg("using file store")
		return fileStore(c.File), nil
	}
	s, err := redisstore.Dial(ctx, c.RedisURL)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("key", c.File).Msg("using redis store")
	return &redisStore{store: s, key: c.File}, nil
}

// fileStore is the path of a wallet file.
type fileStore string

func (f fileStore) Load(context.Context) (*wallet.Wallet, error)   { return wallet.Load(string(f)) }
func (f fileStore) Save(_ context.Context, w *wallet.Wallet) error { return wallet.Save(w, string(f)) }
func (f fileStore) Close() error                                   { return nil }
func (f fileStore) String() string                                 { return string(f) }

// redisStore is a key in a Redis database.
type redisStore struct {
	store *redisstore.Store
	key   string
}

func (r *redisStore) Load(ctx context.Context) (*wallet.Wallet, error) {
	return r.store.Load(ctx, r.key)
}

func (r *redisStore) Save(ctx context.Context, w *wallet.Wallet) error {
	return r.store.Save(ctx, w, r.key)
}

func (r *redisStore) Close() error   { return r.store.Close() }
func (r *redisStore) String() string { return fmt.Sprintf("redis key %q", r.key) }
