package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned when an amount is not a finite, strictly
	// positive decimal.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNotFound is returned by Load when no wallet has been saved yet.
	ErrNotFound = errors.New("wallet not found")
	// ErrCorruptData is returned when persisted content is not a valid wallet.
	ErrCorruptData = errors.New("corrupt wallet data")
	// ErrIO is returned when the persisted resource cannot be read or written.
	ErrIO = errors.New("wallet i/o error")
)

// InsufficientFundsError reports a rejected debit along with the balance at
// the time of the attempt.
type InsufficientFundsError struct {
	Balance Amount // Balance is the wallet balance when the debit was rejected.
	Amount  Amount // Amount is the requested debit.
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: cannot debit %s, balance is %s", e.Amount, e.Balance)
}

func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }

// CorruptDataError reports persisted content that does not decode into a
// valid wallet.
type CorruptDataError struct {
	Reason string
	Err    error
}

func (e *CorruptDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt wallet data: %s: %v", e.Reason, e.Err)
	}
	return "corrupt wallet data: " + e.Reason
}

func (e *CorruptDataError) Is(target error) bool { return target == ErrCorruptData }
func (e *CorruptDataError) Unwrap() error        { return e.Err }

// corrupt is a shorthand to build a CorruptDataError.
func corrupt(err error, format string, args ...any) *CorruptDataError {
	return &CorruptDataError{Reason: fmt.Sprintf(format, args...), Err: err}
}
