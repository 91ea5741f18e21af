package reckon

import "fmt"

// ClientID identifies a client account. Accounts are created lazily on first
// reference and persist for the lifetime of a run.
type ClientID uint16

// TxID identifies a transaction. In well-formed input it is unique per
// deposit; disputes, resolves, and chargebacks use it to reference the
// deposit they target.
type TxID uint32

// Kind is a typed string identifying a transaction kind.
type Kind string

// Transaction kinds accepted in the input log.
const (
	Deposit    Kind = "deposit"
	Withdrawal Kind = "withdrawal"
	Dispute    Kind = "dispute"
	Resolve    Kind = "resolve"
	Chargeback Kind = "chargeback"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Deposit, Withdrawal, Dispute, Resolve, Chargeback:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", ErrMalformedRecord, s)
	}
}

// Transaction is one record of the input log.
//
// Amount is present only for deposits and withdrawals; dispute, resolve, and
// chargeback records carry no amount and instead reference a prior deposit
// through Tx.
type Transaction struct {
	Kind   Kind
	Client ClientID
	Tx     TxID
	Amount *Money
}

// amount returns the transaction amount, or ErrMissingAmount wrapped with the
// transaction id when the record lacks one.
func (t Transaction) amount() (Money, error) {
	if t.Amount == nil {
		return Money{}, fmt.Errorf("tx %d: %w for %q", t.Tx, ErrMissingAmount, t.Kind)
	}
	return *t.Amount, nil
}
