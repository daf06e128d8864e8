package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

type initCmd struct {
	name  string
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new empty wallet" }
func (*initCmd) Usage() string {
	return `wlt init -n <name> [-f]

  Creates a new wallet with a zero balance and no transactions. An existing
  wallet is only replaced with -f.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "The wallet name.")
	f.BoolVar(&c.force, "f", false, "Replace the existing wallet, and lose its transactions.")
}

func (c *initCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		logger.Error().Msg("a wallet name is required (-n)")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore(ctx, config)
	if err != nil {
		return fail(err, "cannot open the wallet store")
	}
	defer store.Close()

	if !c.force {
		existing, err := store.Load(ctx)
		switch {
		case err == nil:
			logger.Error().Str("wallet", existing.Name()).Msgf("a wallet already exists in %s, use -f to replace it", store)
			return subcommands.ExitFailure
		case !errors.Is(err, wallet.ErrNotFound):
			return fail(err, "cannot check for an existing wallet, use -f to replace it")
		}
	}

	w := wallet.New(c.name)
	if err := store.Save(ctx, w); err != nil {
		return fail(err, "cannot save the new wallet")
	}
	fmt.Fprintf(stdout, "Created wallet %q in %s.\n", w.Name(), store)
	return subcommands.ExitSuccess
}
