package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the wallet balance" }
func (*balanceCmd) Usage() string {
	return `wlt balance

  Displays the wallet name, its balance and a summary of its transactions.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, w, err := loadWallet(ctx)
	if err != nil {
		return fail(err, "cannot load the wallet")
	}
	defer store.Close()

	printMarkdown(stdout, newRenderer().Balance(w))
	return subcommands.ExitSuccess
}
