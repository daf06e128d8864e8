package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the wallet document" }
func (*queryCmd) Usage() string {
	return `wlt query <jsonpath>

  Prints, as JSON, the result of a JSONPath expression evaluated against the
  saved wallet document. For instance:

    wlt query '$.transactions[?(@.type == "Debit")].amount'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		logger.Error().Msg("exactly one JSONPath expression is required")
		return subcommands.ExitUsageError
	}

	store, w, err := loadWallet(ctx)
	if err != nil {
		return fail(err, "cannot load the wallet")
	}
	defer store.Close()

	v, err := wallet.Query(w, f.Arg(0))
	if err != nil {
		return fail(err, "invalid query")
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fail(err, "cannot print the result")
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
