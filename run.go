package reckon

import (
	"fmt"
	"io"
)

// LoadTransactions replays the transaction log read from 'r' into a fresh
// ledger. The first fatal error aborts the replay; there are no partial
// retries and nothing is skipped.
func LoadTransactions(r io.Reader) (*Ledger, error) {
	reader, err := NewTransactionReader(r)
	if err != nil {
		return nil, err
	}

	ledger := NewLedger()
	for {
		tx, err := reader.Read()
		if err == io.EOF {
			return ledger, nil
		}
		if err != nil {
			return nil, err
		}
		if err := ledger.Apply(tx); err != nil {
			return nil, fmt.Errorf("cannot process transaction: %w", err)
		}
	}
}

// Run replays the transaction log read from 'r' and writes the resulting
// account states to 'w'. This is the whole batch: one pass, strict input
// order, abort on the first fatal error.
func Run(r io.Reader, w io.Writer) error {
	ledger, err := LoadTransactions(r)
	if err != nil {
		return fmt.Errorf("cannot load transactions: %w", err)
	}
	if err := EncodeAccounts(w, ledger); err != nil {
		return fmt.Errorf("cannot write account balances: %w", err)
	}
	return nil
}
