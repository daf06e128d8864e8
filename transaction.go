package wallet

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/etnz/wallet/date"
)

// Kind tells whether a transaction increased or decreased the balance.
type Kind int

const (
	// Credit increases the balance.
	Credit Kind = iota + 1
	// Debit decreases the balance.
	Debit
)

func (k Kind) String() string {
	switch k {
	case Credit:
		return "Credit"
	case Debit:
		return "Debit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "Credit" or "Debit". Lower case is accepted too.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "Credit", "credit":
		return Credit, nil
	case "Debit", "debit":
		return Debit, nil
	default:
		return 0, fmt.Errorf("unknown transaction type %q", s)
	}
}

func (k Kind) MarshalJSON() ([]byte, error) {
	if k != Credit && k != Debit {
		return nil, fmt.Errorf("cannot marshal transaction type %v", k)
	}
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Transaction is the immutable record of one balance change.
//
// Transactions are only created by Wallet.Credit and Wallet.Debit, and the
// wallet only hands out copies.
type Transaction struct {
	Kind         Kind      // Kind is Credit or Debit.
	Amount       Amount    // Amount is the positive magnitude moved.
	Timestamp    time.Time // Timestamp is when the transaction was applied, in UTC.
	Description  string    // Description is a free-form note, possibly empty.
	BalanceAfter Amount    // BalanceAfter is the wallet balance right after this transaction.
}

// Signed returns the amount with the sign of its effect on the balance.
func (t Transaction) Signed() Amount {
	if t.Kind == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Day returns the UTC day of the transaction.
func (t Transaction) Day() date.Date { return date.Of(t.Timestamp.UTC()) }

// Equal reports whether both transactions are identical field by field.
func (t Transaction) Equal(o Transaction) bool {
	return t.Kind == o.Kind &&
		t.Amount.Equal(o.Amount) &&
		t.Timestamp.Equal(o.Timestamp) &&
		t.Description == o.Description &&
		t.BalanceAfter.Equal(o.BalanceAfter)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %q -> %s", t.Timestamp.Format(time.RFC3339), t.Kind, t.Amount, t.Description, t.BalanceAfter)
}

// MarshalJSON writes the transaction with a stable key order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.Append("type", t.Kind)
	w.Append("amount", t.Amount)
	w.Append("timestamp", t.Timestamp.UTC().Format(time.RFC3339Nano))
	w.Append("description", t.Description)
	w.Append("balance_after", t.BalanceAfter)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a transaction. All fields except description are
// required.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Kind         *Kind   `json:"type"`
		Amount       *Amount `json:"amount"`
		Timestamp    *string `json:"timestamp"`
		Description  string  `json:"description"`
		BalanceAfter *Amount `json:"balance_after"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	switch {
	case temp.Kind == nil:
		return fmt.Errorf("missing transaction field %q", "type")
	case temp.Amount == nil:
		return fmt.Errorf("missing transaction field %q", "amount")
	case temp.Timestamp == nil:
		return fmt.Errorf("missing transaction field %q", "timestamp")
	case temp.BalanceAfter == nil:
		return fmt.Errorf("missing transaction field %q", "balance_after")
	}
	ts, err := time.Parse(time.RFC3339Nano, *temp.Timestamp)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", *temp.Timestamp, err)
	}
	*t = Transaction{
		Kind:         *temp.Kind,
		Amount:       *temp.Amount,
		Timestamp:    ts.UTC(),
		Description:  temp.Description,
		BalanceAfter: *temp.BalanceAfter,
	}
	return nil
}

// ByKind returns a predicate that accepts transactions of the given kind.
func ByKind(k Kind) func(Transaction) bool {
	return func(t Transaction) bool { return t.Kind == k }
}

// Between returns a predicate that accepts transactions whose UTC day is in r.
func Between(r date.Range) func(Transaction) bool {
	return func(t Transaction) bool { return r.ContainsTime(t.Timestamp) }
}
