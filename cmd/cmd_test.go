package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// setup points the commands to a wallet file in a temporary folder. It
// returns the buffer collecting the logs.
func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	oldConfig, oldLogger, oldStdin, oldStdout := config, logger, stdin, stdout
	t.Cleanup(func() { config, logger, stdin, stdout = oldConfig, oldLogger, oldStdin, oldStdout })

	var logs bytes.Buffer
	config = Config{
		File:         filepath.Join(t.TempDir(), "wallet.json"),
		Currency:     "USD",
		LogLevel:     "debug",
		GlamourStyle: "notty",
	}
	logger = zerolog.New(&logs)
	stdin = strings.NewReader("")
	return &logs
}

// run executes cmd with args and returns its standard output.
func run(t *testing.T, cmd subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %v: cannot parse flags: %v", cmd.Name(), args, err)
	}
	var out bytes.Buffer
	stdout = &out
	status := cmd.Execute(context.Background(), f)
	return out.String(), status
}

// mustRun executes cmd and fails the test if it does not succeed.
func mustRun(t *testing.T, cmd subcommands.Command, args ...string) string {
	t.Helper()
	out, status := run(t, cmd, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("%s %v exited with %v, output:\n%s", cmd.Name(), args, status, out)
	}
	return out
}

// aliceFile creates the reference wallet with the commands: credit 100, debit 30.
func aliceFile(t *testing.T) {
	t.Helper()
	mustRun(t, &initCmd{}, "-n", "Alice")
	mustRun(t, &creditCmd, "-a", "100", "-m", "init")
	mustRun(t, &debitCmd, "-a", "30", "-m", "coffee")
}

// saved loads the wallet saved in the configured file.
func saved(t *testing.T) *wallet.Wallet {
	t.Helper()
	w, err := wallet.Load(config.File)
	if err != nil {
		t.Fatalf("cannot load the saved wallet: %v", err)
	}
	return w
}

// writeFile writes content to name or fails the test.
func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
