package cmd

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

func TestInit(t *testing.T) {
	logs := setup(t)

	out := mustRun(t, &initCmd{}, "-n", "Alice")
	if want := `Created wallet "Alice" in ` + config.File + ".\n"; out != want {
		t.Errorf("init output = %q, want %q", out, want)
	}
	w := saved(t)
	if w.Name() != "Alice" || !w.Balance().IsZero() || w.Len() != 0 {
		t.Errorf("saved wallet = %q %s %d, want an empty wallet named Alice", w.Name(), w.Balance(), w.Len())
	}

	mustRun(t, &creditCmd, "-a", "10")
	if _, status := run(t, &initCmd{}, "-n", "Bob"); status != subcommands.ExitFailure {
		t.Errorf("init over an existing wallet exited with %v, want failure", status)
	}
	if !strings.Contains(logs.String(), "already exists") {
		t.Errorf("logs do not explain the failure:\n%s", logs)
	}
	if w := saved(t); w.Name() != "Alice" || w.Len() != 1 {
		t.Errorf("init without -f replaced the wallet with %q", w.Name())
	}

	mustRun(t, &initCmd{}, "-n", "Bob", "-f")
	if w := saved(t); w.Name() != "Bob" || w.Len() != 0 {
		t.Errorf("init -f saved %q with %d transactions, want an empty Bob", w.Name(), w.Len())
	}
}

func TestInitRequiresName(t *testing.T) {
	setup(t)
	if _, status := run(t, &initCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("init without -n exited with %v, want usage error", status)
	}
	if _, err := os.Stat(config.File); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("init without -n created %s", config.File)
	}
}

func TestInitOverCorruptWallet(t *testing.T) {
	setup(t)
	writeFile(t, config.File, "{")
	if _, status := run(t, &initCmd{}, "-n", "Alice"); status != subcommands.ExitFailure {
		t.Errorf("init over a corrupt wallet exited with %v, want failure", status)
	}
	mustRun(t, &initCmd{}, "-n", "Alice", "-f")
}

func TestCreditDebit(t *testing.T) {
	setup(t)
	mustRun(t, &initCmd{}, "-n", "Alice")

	if out, want := mustRun(t, &creditCmd, "-a", "100", "-m", "init"), "Credit of $100.00 recorded. Balance: $100.00\n"; out != want {
		t.Errorf("credit output = %q, want %q", out, want)
	}
	if out, want := mustRun(t, &debitCmd, "-a", "30", "-m", "coffee"), "Debit of $30.00 recorded. Balance: $70.00\n"; out != want {
		t.Errorf("debit output = %q, want %q", out, want)
	}

	w := saved(t)
	if !w.Balance().Equal(wallet.A(70)) || w.Len() != 2 {
		t.Fatalf("saved wallet: balance %s, len %d, want 70, 2", w.Balance(), w.Len())
	}
	last, _ := w.Last()
	if last.Kind != wallet.Debit || last.Description != "coffee" {
		t.Errorf("last transaction = %v, want the coffee debit", last)
	}
}

func TestCreditDebitRefused(t *testing.T) {
	testCases := []struct {
		name string
		cmd  *moveCmd
		args []string
		want subcommands.ExitStatus
	}{
		{"insufficient funds", &debitCmd, []string{"-a", "1000", "-m", "rent"}, subcommands.ExitFailure},
		{"negative credit", &creditCmd, []string{"-a", "-5"}, subcommands.ExitUsageError},
		{"zero debit", &debitCmd, []string{"-a", "0"}, subcommands.ExitUsageError},
		{"not a number", &creditCmd, []string{"-a", "ten"}, subcommands.ExitUsageError},
		{"missing amount", &creditCmd, nil, subcommands.ExitUsageError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup(t)
			aliceFile(t)
			if _, status := run(t, tc.cmd, tc.args...); status != tc.want {
				t.Errorf("%s %v exited with %v, want %v", tc.cmd.Name(), tc.args, status, tc.want)
			}
			w := saved(t)
			if !w.Balance().Equal(wallet.A(70)) || w.Len() != 2 {
				t.Errorf("refused operation changed the wallet: balance %s, len %d", w.Balance(), w.Len())
			}
		})
	}
}

func TestCommandsWithoutWallet(t *testing.T) {
	commands := []struct {
		cmd  subcommands.Command
		args []string
	}{
		{&balanceCmd{}, nil},
		{&creditCmd, []string{"-a", "1"}},
		{&txCmd{}, nil},
		{&statementCmd{}, nil},
		{&queryCmd{}, []string{"$.balance"}},
	}
	for _, c := range commands {
		t.Run(c.cmd.Name(), func(t *testing.T) {
			logs := setup(t)
			if _, status := run(t, c.cmd, c.args...); status != subcommands.ExitFailure {
				t.Errorf("%s exited with %v, want failure", c.cmd.Name(), status)
			}
			if !strings.Contains(logs.String(), "wlt init") {
				t.Errorf("logs do not suggest wlt init:\n%s", logs)
			}
		})
	}
}

func TestBalanceCmd(t *testing.T) {
	setup(t)
	aliceFile(t)
	out := mustRun(t, &balanceCmd{})
	if want := "# Alice\n\n**Balance: $70.00**\n\n2 transactions"; !strings.HasPrefix(out, want) {
		t.Errorf("balance output = %q, want it to start with %q", out, want)
	}
}

func TestBalanceCurrency(t *testing.T) {
	setup(t)
	config.Currency = "EUR"
	mustRun(t, &initCmd{}, "-n", "Alice")
	mustRun(t, &creditCmd, "-a", "1234.5")
	if out := mustRun(t, &balanceCmd{}); !strings.Contains(out, "€") || strings.Contains(out, "$") {
		t.Errorf("balance output = %q, want the amount in euros", out)
	}
}

func TestTxCmd(t *testing.T) {
	testCases := []struct {
		args    []string
		want    []string
		notWant []string
	}{
		{nil, []string{"| init |", "| coffee |"}, nil},
		{[]string{"-k", "debit"}, []string{"| coffee |"}, []string{"| init |"}},
		{[]string{"-k", "Credit"}, []string{"| init |"}, []string{"| coffee |"}},
		{[]string{"-head", "1"}, []string{"| init |"}, []string{"| coffee |"}},
		{[]string{"-tail", "1"}, []string{"| coffee |"}, []string{"| init |"}},
		{[]string{"-p", "year"}, []string{"| init |", "| coffee |"}, nil},
		{[]string{"-s", "2000-01-01", "-d", "2000-12-31"}, []string{"_No transactions._"}, []string{"| init |"}},
	}
	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			setup(t)
			aliceFile(t)
			out := mustRun(t, &txCmd{}, tc.args...)
			for _, want := range tc.want {
				if !strings.Contains(out, want) {
					t.Errorf("tx %v output does not contain %q:\n%s", tc.args, want, out)
				}
			}
			for _, notWant := range tc.notWant {
				if strings.Contains(out, notWant) {
					t.Errorf("tx %v output contains %q:\n%s", tc.args, notWant, out)
				}
			}
		})
	}
}

func TestTxCmdUsage(t *testing.T) {
	testCases := [][]string{
		{"-head", "1", "-tail", "1"},
		{"-k", "transfer"},
	}
	for _, args := range testCases {
		setup(t)
		aliceFile(t)
		if _, status := run(t, &txCmd{}, args...); status != subcommands.ExitUsageError {
			t.Errorf("tx %v exited with %v, want usage error", args, status)
		}
	}
}

func TestTxCmdInvalidRange(t *testing.T) {
	for _, args := range [][]string{{"-p", "century"}, {"-d", "yesterday"}, {"-s", "2025-02-01", "-d", "2025-01-01"}} {
		setup(t)
		aliceFile(t)
		if _, status := run(t, &txCmd{}, args...); status != subcommands.ExitFailure {
			t.Errorf("tx %v exited with %v, want failure", args, status)
		}
	}
}

func TestStatementCmd(t *testing.T) {
	setup(t)
	aliceFile(t)
	out := mustRun(t, &statementCmd{}, "-p", "year")
	for _, want := range []string{
		"| Opening balance | $0.00 |",
		"| Credits         | +$100.00 |",
		"| Debits          | -$30.00 |",
		"| Closing balance | $70.00 |",
		"| coffee |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("statement output does not contain %q:\n%s", want, out)
		}
	}

	out = mustRun(t, &statementCmd{}, "-d", "2000-01-15")
	if !strings.Contains(out, "# Alice 2000-01") || !strings.Contains(out, "_No transactions._") {
		t.Errorf("statement of January 2000 = \n%s", out)
	}
}

func TestQueryCmd(t *testing.T) {
	setup(t)
	aliceFile(t)

	if out, want := mustRun(t, &queryCmd{}, "$.balance"), "70\n"; out != want {
		t.Errorf("query $.balance = %q, want %q", out, want)
	}
	out := mustRun(t, &queryCmd{}, "$.transactions[*].description")
	if want := "[\n  \"init\",\n  \"coffee\"\n]\n"; out != want {
		t.Errorf("query descriptions = %q, want %q", out, want)
	}

	if _, status := run(t, &queryCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("query without expression exited with %v, want usage error", status)
	}
	if _, status := run(t, &queryCmd{}, "$.owner"); status != subcommands.ExitFailure {
		t.Errorf("query $.owner exited with %v, want failure", status)
	}
}

func TestTopicCmd(t *testing.T) {
	setup(t)
	if out := mustRun(t, &topicCmd{}); !strings.HasPrefix(out, "# wlt\n") {
		t.Errorf("topic without argument = %q, want the index", out)
	}
	if out := mustRun(t, &topicCmd{}, "wallet", "storage"); !strings.Contains(out, "# Wallet") || !strings.Contains(out, "# Storage") {
		t.Errorf("topic wallet storage does not contain both topics:\n%s", out)
	}
	if _, status := run(t, &topicCmd{}, "nope"); status != subcommands.ExitFailure {
		t.Errorf("topic nope exited with %v, want failure", status)
	}
}

func TestRedisStore(t *testing.T) {
	setup(t)
	mr := miniredis.RunT(t)
	config.RedisURL = "redis://" + mr.Addr()
	config.File = "alice"

	aliceFile(t)
	doc, err := mr.Get("alice")
	if err != nil {
		t.Fatalf("the wallet is not stored under its key: %v", err)
	}
	if !strings.Contains(doc, `"name": "Alice"`) || !strings.Contains(doc, `"balance": 70`) {
		t.Errorf("stored document:\n%s", doc)
	}
	if out := mustRun(t, &balanceCmd{}); !strings.Contains(out, "$70.00") {
		t.Errorf("balance from redis = %q", out)
	}
	if _, err := os.Stat("alice"); !errors.Is(err, os.ErrNotExist) {
		t.Error("the redis store must not write files")
	}
}

func TestRedisStoreUnreachable(t *testing.T) {
	logs := setup(t)
	mr := miniredis.RunT(t)
	config.RedisURL = "redis://" + mr.Addr()
	mr.Close()

	if _, status := run(t, &balanceCmd{}); status != subcommands.ExitFailure {
		t.Errorf("balance with redis down exited with %v, want failure", status)
	}
	if !strings.Contains(logs.String(), wallet.ErrIO.Error()) {
		t.Errorf("logs do not report an i/o error:\n%s", logs)
	}
}
