package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type statementCmd struct {
	period string
	date   string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "display the wallet statement of a period" }
func (*statementCmd) Usage() string {
	return `wlt statement [-p <period>] [-d <date>]

  Displays the opening balance, the credits, the debits and the closing
  balance of the period containing the date, followed by its transactions.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.date, "d", "0d", "A date in the period (defaults to today).")
}

func (c *statementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.period, "", c.date)
	if err != nil {
		return fail(err, "invalid period")
	}

	store, w, err := loadWallet(ctx)
	if err != nil {
		return fail(err, "cannot load the wallet")
	}
	defer store.Close()

	printMarkdown(stdout, newRenderer().Statement(w.Statement(r)))
	return subcommands.ExitSuccess
}
