// Package cmd implements the wlt command line application to manage a wallet.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package calls Setup after parsing flags, and Execute on the
// user-selected command.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "wallet")
	c.Register(&creditCmd, "wallet")
	c.Register(&debitCmd, "wallet")
	c.Register(&shellCmd{}, "wallet")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&statementCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var walletFile = flag.String("wallet-file", "", "Wallet file, or Redis key when WALLET_REDIS_URL is set. Defaults to $WALLET_FILE.")

var (
	config = Config{File: "wallet.json", Currency: "USD", GlamourStyle: "auto"}
	logger = zerolog.Nop()

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// Setup reads the configuration and creates the logger. Flags must be parsed
// first: they take precedence over the environment.
func Setup() error {
	c, err := LoadConfig()
	if err != nil {
		return err
	}
	if *walletFile != "" {
		c.File = *walletFile
	}
	l, err := NewLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return err
	}
	config, logger = c, l
	logger.Debug().Str("wallet", config.File).Bool("redis", config.RedisURL != "").Msg("configuration loaded")
	return nil
}

// newRenderer returns a renderer using the configured currency.
func newRenderer() *renderer.Renderer { return renderer.New(config.Currency) }

// loadWallet opens the configured store and loads the wallet from it.
// The caller must close the store.
func loadWallet(ctx context.Context) (Store, *wallet.Wallet, error) {
	store, err := OpenStore(ctx, config)
	if err != nil {
		return nil, nil, err
	}
	w, err := store.Load(ctx)
	if errors.Is(err, wallet.ErrNotFound) {
		store.Close()
		return nil, nil, fmt.Errorf("no wallet in %s, create one with 'wlt init -n <name>': %w", store, err)
	}
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, w, nil
}

// fail logs err and returns the matching exit status.
func fail(err error, msg string) subcommands.ExitStatus {
	logger.Error().Err(err).Msg(msg)
	if errors.Is(err, wallet.ErrInvalidAmount) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
