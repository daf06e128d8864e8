package wallet

import (
	"fmt"
	"iter"
	"strings"
	"time"
	"unicode/utf8"
)

// Wallet is a named balance with its append-only transaction log.
//
// In a Wallet transactions are always in chronological order, and the
// balance is always the sum of credits minus the sum of debits.
// A Wallet is not safe for concurrent use.
type Wallet struct {
	name         string
	balance      Amount
	transactions []Transaction
	now          func() time.Time
}

// Option configures a new Wallet.
type Option func(*Wallet)

// WithClock sets the function used to timestamp transactions.
func WithClock(now func() time.Time) Option {
	return func(w *Wallet) { w.now = now }
}

// New creates an empty wallet: balance 0 and no transactions.
// Invalid UTF-8 in name is replaced, see Credit.
func New(name string, opts ...Option) *Wallet {
	w := &Wallet{
		name:         validText(name),
		transactions: make([]Transaction, 0),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name returns the wallet's display name.
func (w *Wallet) Name() string { return w.name }

// Balance returns the current balance.
func (w *Wallet) Balance() Amount { return w.balance }

// Len returns the number of transactions in the log.
func (w *Wallet) Len() int { return len(w.transactions) }

// Last returns the most recent transaction, false if the log is empty.
func (w *Wallet) Last() (Transaction, bool) {
	if len(w.transactions) == 0 {
		return Transaction{}, false
	}
	return w.transactions[len(w.transactions)-1], true
}

// Credit adds amount to the balance and records it.
//
// amount must be strictly positive and within MaxScale and MaxDigits,
// otherwise ErrInvalidAmount is returned and the wallet is left unchanged.
// Invalid UTF-8 sequences in description are recorded as U+FFFD, the way
// they are persisted.
func (w *Wallet) Credit(amount Amount, description string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: credit amount must be positive, got %s", ErrInvalidAmount, amount)
	}
	if err := amount.check(); err != nil {
		return fmt.Errorf("credit: %w", err)
	}
	w.apply(Credit, amount, description)
	return nil
}

// Debit removes amount from the balance and records it.
//
// amount must be strictly positive and within bounds (ErrInvalidAmount), and
// not greater than the balance (*InsufficientFundsError). On error the wallet
// is left unchanged. description is handled as in Credit.
func (w *Wallet) Debit(amount Amount, description string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: debit amount must be positive, got %s", ErrInvalidAmount, amount)
	}
	if err := amount.check(); err != nil {
		return fmt.Errorf("debit: %w", err)
	}
	if amount.GreaterThan(w.balance) {
		return &InsufficientFundsError{Balance: w.balance, Amount: amount}
	}
	w.apply(Debit, amount, description)
	return nil
}

// apply updates the balance and appends the matching record. Inputs must
// already be validated.
func (w *Wallet) apply(kind Kind, amount Amount, description string) {
	balance := w.balance.Add(amount)
	if kind == Debit {
		balance = w.balance.Sub(amount)
	}
	w.balance = balance
	w.transactions = append(w.transactions, Transaction{
		Kind:         kind,
		Amount:       amount,
		Timestamp:    w.timestamp(),
		Description:  validText(description),
		BalanceAfter: balance,
	})
}

// validText replaces invalid UTF-8 sequences with U+FFFD before storing, so
// that saved text reads back unchanged.
func validText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// timestamp returns the current UTC time, never before the last transaction.
func (w *Wallet) timestamp() time.Time {
	// Round(0) strips the monotonic clock reading so that timestamps compare
	// equal after a round trip.
	ts := w.now().UTC().Round(0)
	if last, ok := w.Last(); ok && ts.Before(last.Timestamp) {
		ts = last.Timestamp
	}
	return ts
}

// Transactions returns an iterator over the transactions, in chronological
// order, accepted by all filters. With no filters, every transaction is
// yielded. The iterator yields copies: the log cannot be modified through it.
func (w *Wallet) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
	next:
		for i, tx := range w.transactions {
			for _, accept := range filters {
				if !accept(tx) {
					continue next
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Totals returns the sum of all credits and the sum of all debits.
func (w *Wallet) Totals() (credits, debits Amount) {
	for _, tx := range w.transactions {
		switch tx.Kind {
		case Credit:
			credits = credits.Add(tx.Amount)
		case Debit:
			debits = debits.Add(tx.Amount)
		}
	}
	return credits, debits
}

// Verify checks the wallet invariants: every amount is positive, timestamps
// never decrease, each balance_after matches the running sum and is never
// negative, and the balance matches the last balance_after (0 when empty).
func (w *Wallet) Verify() error {
	var running Amount
	var previous time.Time
	for i, tx := range w.transactions {
		if !tx.Amount.IsPositive() {
			return corrupt(nil, "transaction %d: amount must be positive, got %s", i, tx.Amount)
		}
		switch tx.Kind {
		case Credit:
			running = running.Add(tx.Amount)
		case Debit:
			running = running.Sub(tx.Amount)
		default:
			return corrupt(nil, "transaction %d: unknown type %v", i, tx.Kind)
		}
		if running.IsNegative() {
			return corrupt(nil, "transaction %d: balance becomes negative (%s)", i, running)
		}
		if !tx.BalanceAfter.Equal(running) {
			return corrupt(nil, "transaction %d: balance_after is %s, want %s", i, tx.BalanceAfter, running)
		}
		if tx.Timestamp.Before(previous) {
			return corrupt(nil, "transaction %d: timestamp %s is before the previous one", i, tx.Timestamp.Format(time.RFC3339Nano))
		}
		previous = tx.Timestamp
	}
	if !w.balance.Equal(running) {
		return corrupt(nil, "balance is %s, transactions sum to %s", w.balance, running)
	}
	return nil
}
