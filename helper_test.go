package wallet

import (
	"testing"
	"time"
)

// day0 is the timestamp of the first transaction made with ticking.
var day0 = time.Date(2025, time.January, 2, 10, 0, 0, 0, time.UTC)

// ticking returns a clock starting at start and moving forward by step on each call.
func ticking(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

// mustCredit credits w or fails the test.
func mustCredit(t *testing.T, w *Wallet, amount Amount, description string) {
	t.Helper()
	if err := w.Credit(amount, description); err != nil {
		t.Fatalf("Credit(%s, %q) unexpected error: %v", amount, description, err)
	}
}

// mustDebit debits w or fails the test.
func mustDebit(t *testing.T, w *Wallet, amount Amount, description string) {
	t.Helper()
	if err := w.Debit(amount, description); err != nil {
		t.Fatalf("Debit(%s, %q) unexpected error: %v", amount, description, err)
	}
}

// collect returns a copy of all the transactions of w.
func collect(w *Wallet) []Transaction {
	var txs []Transaction
	for _, tx := range w.Transactions() {
		txs = append(txs, tx)
	}
	return txs
}

// alice returns the wallet of the reference scenario: credit 100, debit 30.
func alice(t *testing.T) *Wallet {
	t.Helper()
	w := New("Alice", WithClock(ticking(day0, time.Hour)))
	mustCredit(t, w, A(100), "init")
	mustDebit(t, w, A(30), "coffee")
	return w
}
