package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the wallet from an interactive menu" }
func (*shellCmd) Usage() string {
	return `wlt shell

  Starts an interactive menu to create a wallet, credit, debit and view the
  balance. The wallet is saved after every change.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore(ctx, config)
	if err != nil {
		return fail(err, "cannot open the wallet store")
	}
	defer store.Close()

	s := &shell{
		in:       bufio.NewScanner(stdin),
		out:      stdout,
		store:    store,
		renderer: newRenderer(),
	}
	if err := s.run(ctx); err != nil {
		return fail(err, "shell ended")
	}
	return subcommands.ExitSuccess
}

// shell is an interactive session on a single wallet.
type shell struct {
	in       *bufio.Scanner
	out      io.Writer
	store    Store
	renderer *renderer.Renderer
	wallet   *wallet.Wallet
}

// errQuit ends the session without error.
var errQuit = errors.New("quit")

// run loads the wallet, or creates it, and executes the menu loop until the
// user exits or the input ends.
func (s *shell) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Wallet ledger")
	fmt.Fprintln(s.out)

	err := s.open(ctx)
	for err == nil {
		err = s.step(ctx)
	}
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// open loads the wallet from the store, or starts a new one when there is
// none yet. A corrupt wallet is never replaced.
func (s *shell) open(ctx context.Context) error {
	w, err := s.store.Load(ctx)
	if err == nil {
		s.wallet = w
		fmt.Fprintf(s.out, "Loaded wallet %q from %s.\n\n", w.Name(), s.store)
		return nil
	}
	if !errors.Is(err, wallet.ErrNotFound) {
		return err
	}

	fmt.Fprintf(s.out, "No wallet found in %s, creating a new one.\n", s.store)
	name, err := s.prompt("Wallet name: ")
	if err != nil {
		return err
	}
	s.wallet = wallet.New(name)
	s.save(ctx)
	fmt.Fprintln(s.out)
	return nil
}

const menu = `1. Create wallet
2. Credit
3. Debit
4. View balance
5. Save & exit
`

// step displays the menu and executes one choice.
func (s *shell) step(ctx context.Context) error {
	fmt.Fprint(s.out, menu)
	choice, err := s.prompt("Choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return s.create(ctx)
	case "2":
		return s.move(ctx, wallet.Credit)
	case "3":
		return s.move(ctx, wallet.Debit)
	case "4":
		fmt.Fprintln(s.out)
		printMarkdown(s.out, s.renderer.Balance(s.wallet))
		fmt.Fprintln(s.out)
		return nil
	case "5":
		s.save(ctx)
		fmt.Fprintln(s.out, "Goodbye!")
		return errQuit
	default:
		fmt.Fprintf(s.out, "Invalid choice %q.\n\n", choice)
		return nil
	}
}

// create replaces the current wallet with a new empty one, after confirmation.
func (s *shell) create(ctx context.Context) error {
	confirm, err := s.prompt(fmt.Sprintf("Replace wallet %q and lose its transactions? (yes/no): ", s.wallet.Name()))
	if err != nil {
		return err
	}
	if strings.ToLower(confirm) != "yes" {
		fmt.Fprintln(s.out, "Cancelled.")
		fmt.Fprintln(s.out)
		return nil
	}
	name, err := s.prompt("Wallet name: ")
	if err != nil {
		return err
	}
	s.wallet = wallet.New(name)
	s.save(ctx)
	fmt.Fprintf(s.out, "Created wallet %q.\n\n", name)
	return nil
}

// move asks for an amount and a description, and applies a credit or a debit.
func (s *shell) move(ctx context.Context, kind wallet.Kind) error {
	input, err := s.prompt("Amount: ")
	if err != nil {
		return err
	}
	amount, err := wallet.ParseAmount(input)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid amount %q.\n\n", input)
		return nil
	}
	description, err := s.prompt("Description: ")
	if err != nil {
		return err
	}

	if kind == wallet.Debit {
		err = s.wallet.Debit(amount, description)
	} else {
		err = s.wallet.Credit(amount, description)
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n\n", err)
		return nil
	}
	s.save(ctx)
	currency := s.renderer.Currency
	fmt.Fprintf(s.out, "%s of %s recorded. Balance: %s\n\n", kind, amount.Format(currency), s.wallet.Balance().Format(currency))
	return nil
}

// save saves the wallet. A failure is only a warning: the session goes on
// and the next save tries again.
func (s *shell) save(ctx context.Context) {
	if err := s.store.Save(ctx, s.wallet); err != nil {
		logger.Warn().Err(err).Msg("wallet not saved")
		fmt.Fprintf(s.out, "Warning: wallet not saved: %v\n", err)
	}
}

// prompt prints msg and reads one line, without surrounding spaces. It
// returns io.EOF when the input ends.
func (s *shell) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("cannot read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}
