package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

// moveCmd applies a credit or a debit to the wallet, and saves it.
type moveCmd struct {
	kind        wallet.Kind
	amount      string
	description string
}

var (
	creditCmd = moveCmd{kind: wallet.Credit}
	debitCmd  = moveCmd{kind: wallet.Debit}
)

func (c *moveCmd) Name() string {
	if c.kind == wallet.Debit {
		return "debit"
	}
	return "credit"
}

func (c *moveCmd) Synopsis() string {
	if c.kind == wallet.Debit {
		return "remove funds from the wallet"
	}
	return "add funds to the wallet"
}

func (c *moveCmd) Usage() string {
	return fmt.Sprintf(`wlt %s -a <amount> [-m <description>]

  Records a %s of a strictly positive amount, and saves the wallet.
`, c.Name(), c.Name())
}

func (c *moveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "The amount, a decimal number like 12.50.")
	f.StringVar(&c.description, "m", "", "A description of the transaction.")
}

func (c *moveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		logger.Error().Msg("an amount is required (-a)")
		return subcommands.ExitUsageError
	}
	amount, err := wallet.ParseAmount(c.amount)
	if err != nil {
		return fail(err, "cannot read the amount")
	}

	store, w, err := loadWallet(ctx)
	if err != nil {
		return fail(err, "cannot load the wallet")
	}
	defer store.Close()

	if c.kind == wallet.Debit {
		err = w.Debit(amount, c.description)
	} else {
		err = w.Credit(amount, c.description)
	}
	if err != nil {
		return fail(err, c.Name()+" refused")
	}
	if err := store.Save(ctx, w); err != nil {
		return fail(err, "cannot save the wallet")
	}

	r := newRenderer()
	fmt.Fprintf(stdout, "%s of %s recorded. Balance: %s\n", c.kind, amount.Format(r.Currency), w.Balance().Format(r.Currency))
	return subcommands.ExitSuccess
}
