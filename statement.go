package wallet

import "github.com/etnz/wallet/date"

// Statement summarizes the wallet activity over a date range.
type Statement struct {
	Name         string
	Range        date.Range
	Opening      Amount // Opening is the balance before the first day of the range.
	Credits      Amount // Credits is the sum of credits within the range.
	Debits       Amount // Debits is the sum of debits within the range.
	Closing      Amount // Closing is the balance at the end of the last day of the range.
	Transactions []Transaction
}

// Statement computes the statement of the wallet over r.
func (w *Wallet) Statement(r date.Range) Statement {
	s := Statement{Name: w.name, Range: r}
	for _, tx := range w.transactions {
		day := tx.Day()
		switch {
		case day.Before(r.From):
			s.Opening = tx.BalanceAfter
		case r.Contains(day):
			s.Transactions = append(s.Transactions, tx)
			if tx.Kind == Debit {
				s.Debits = s.Debits.Add(tx.Amount)
			} else {
				s.Credits = s.Credits.Add(tx.Amount)
			}
		}
	}
	s.Closing = s.Opening.Add(s.Credits).Sub(s.Debits)
	return s
}
