package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/date"
	"github.com/google/subcommands"
)

type txCmd struct {
	period string
	start  string
	date   string
	kind   string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of the wallet" }
func (*txCmd) Usage() string {
	return `wlt tx [-p <period> | -s <start_date>] [-d <end_date>] [-k credit|debit] [-head <n>] [-tail <n>]

  Lists transactions from the wallet log, with options for filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&p.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&p.date, "d", "", "The end date for the range.")
	f.StringVar(&p.kind, "k", "", "Show only credits or debits.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		logger.Error().Msg("-head and -tail flags cannot be used together")
		return subcommands.ExitUsageError
	}

	var filters []func(wallet.Transaction) bool
	// If no date range flags are provided, use the full log.
	if p.start != "" || p.date != "" || p.period != "" {
		r, err := parseRange(p.period, p.start, p.date)
		if err != nil {
			return fail(err, "invalid range")
		}
		filters = append(filters, wallet.Between(r))
	}
	if p.kind != "" {
		kind, err := wallet.ParseKind(p.kind)
		if err != nil {
			logger.Error().Err(err).Msg("invalid -k")
			return subcommands.ExitUsageError
		}
		filters = append(filters, wallet.ByKind(kind))
	}

	store, w, err := loadWallet(ctx)
	if err != nil {
		return fail(err, "cannot load the wallet")
	}
	defer store.Close()

	var transactions []wallet.Transaction
	for _, tx := range w.Transactions(filters...) {
		transactions = append(transactions, tx)
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(stdout, newRenderer().Transactions(transactions))
	return subcommands.ExitSuccess
}

// parseRange returns the range ending on end (today when empty), either
// starting on start, or the period containing end.
func parseRange(period, start, end string) (date.Range, error) {
	if end == "" {
		end = "0d"
	}
	endDate, err := date.Parse(end)
	if err != nil {
		return date.Range{}, fmt.Errorf("parsing end date: %w", err)
	}

	if start != "" {
		startDate, err := date.Parse(start)
		if err != nil {
			return date.Range{}, fmt.Errorf("parsing start date: %w", err)
		}
		if startDate.After(endDate) {
			return date.Range{}, fmt.Errorf("start date %s is after end date %s", startDate, endDate)
		}
		return date.Between(startDate, endDate), nil
	}

	if period == "" {
		period = "day"
	}
	p, err := date.ParsePeriod(period)
	if err != nil {
		return date.Range{}, fmt.Errorf("parsing period: %w", err)
	}
	return date.NewRange(endDate, p), nil
}
