package reckon

import "errors"

var (
	// ErrMalformedRecord reports an input record that cannot be parsed into
	// the expected shape (bad transaction type, non-numeric id or amount).
	ErrMalformedRecord = errors.New("malformed record")

	// ErrMissingAmount reports a deposit or withdrawal record without the
	// required amount field.
	ErrMissingAmount = errors.New("missing amount")

	// ErrInsufficientFunds reports a withdrawal requesting more than the
	// account's available funds.
	ErrInsufficientFunds = errors.New("funds are not sufficient for withdrawal")
)
