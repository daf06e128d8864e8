package wallet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MarshalJSON writes the wallet document: name, balance and transactions, in
// that order.
func (w *Wallet) MarshalJSON() ([]byte, error) {
	txs, err := json.Marshal(w.transactions)
	if err != nil {
		return nil, err
	}
	var o objectWriter
	o.Append("name", w.name)
	o.Append("balance", w.balance)
	o.AppendRaw("transactions", txs)
	return o.MarshalJSON()
}

// Encode writes the wallet to w as an indented, human-readable JSON document.
func Encode(w io.Writer, wallet *Wallet) error {
	raw, err := wallet.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal wallet %q: %w", wallet.name, err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to indent wallet %q: %w", wallet.name, err)
	}
	out.WriteByte('\n')
	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("%w: failed to write wallet %q: %w", ErrIO, wallet.name, err)
	}
	return nil
}

// Decode reads a wallet document from r.
//
// Content that is not a single JSON document with a name, a balance and a
// valid transaction log is reported as a *CorruptDataError. The decoded
// wallet is checked with Verify.
func Decode(r io.Reader) (*Wallet, error) {
	var doc struct {
		Name         *string       `json:"name"`
		Balance      *Amount       `json:"balance"`
		Transactions []Transaction `json:"transactions"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, corrupt(err, "cannot decode document")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, corrupt(err, "unexpected content after the document")
	}
	switch {
	case doc.Name == nil:
		return nil, corrupt(nil, "missing field %q", "name")
	case doc.Balance == nil:
		return nil, corrupt(nil, "missing field %q", "balance")
	}

	w := New(*doc.Name)
	w.balance = *doc.Balance
	if doc.Transactions != nil {
		w.transactions = doc.Transactions
	}
	if err := w.Verify(); err != nil {
		return nil, err
	}
	return w, nil
}
