// Package wallet provides the core of a local-first personal wallet ledger.
//
// A Wallet tracks a single named balance. The balance only changes through
// two operations:
//   - Credit: adds a strictly positive amount.
//   - Debit: removes a strictly positive amount, never more than the balance.
//
// Every successful operation appends an immutable Transaction to an
// append-only, chronological log. The balance always equals the sum of
// credits minus the sum of debits over that log, and it is never negative.
//
// Amounts are exact decimals: there is no binary floating point in stored or
// persisted values, so long sequences of operations never drift.
// Amounts accepted by ParseAmount, Credit, Debit and Decode carry at most
// MaxScale (8) fractional digits and stay below 10^MaxDigits (10^15); other
// values are rejected with ErrInvalidAmount, or ErrCorruptData when decoded.
//
// Names and descriptions with invalid UTF-8 are stored with U+FFFD in place
// of the invalid bytes, so they read back from a saved file unchanged.
//
// The package also handles persistence: Encode and Decode convert a wallet
// to and from a human-readable JSON document, and Save and Load write and
// read that document to a file path chosen by the caller.
//
// This package serves as the foundational logic for the `wlt` command-line
// tool.
package wallet
