package reckon

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// this file decodes the input transaction log.
//
// The log is a CSV file with a header row naming the columns `type`,
// `client`, `tx`, and optionally `amount`, in any column order. Fields are
// trimmed of surrounding whitespace before parsing. Record order defines
// processing order end-to-end.

// A TransactionReader streams transaction records from a CSV source, one at
// a time, in file order.
type TransactionReader struct {
	csv  *csv.Reader
	cols map[string]int
	line int
}

// NewTransactionReader reads the header row and prepares to stream records.
func NewTransactionReader(r io.Reader) (*TransactionReader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows without an amount may omit the field

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedRecord)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"type", "client", "tx"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: header is missing the %q column", ErrMalformedRecord, required)
		}
	}

	return &TransactionReader{csv: cr, cols: cols, line: 1}, nil
}

// Read returns the next transaction record, or io.EOF after the last one.
func (r *TransactionReader) Read() (Transaction, error) {
	record, err := r.csv.Read()
	if err == io.EOF {
		return Transaction{}, io.EOF
	}
	r.line++
	if err != nil {
		return Transaction{}, fmt.Errorf("line %d: %w: %v", r.line, ErrMalformedRecord, err)
	}

	field := func(name string) string {
		i, ok := r.cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	kind, err := ParseKind(field("type"))
	if err != nil {
		return Transaction{}, fmt.Errorf("line %d: %w", r.line, err)
	}

	client, err := strconv.ParseUint(field("client"), 10, 16)
	if err != nil {
		return Transaction{}, fmt.Errorf("line %d: %w: invalid client id %q", r.line, ErrMalformedRecord, field("client"))
	}

	id, err := strconv.ParseUint(field("tx"), 10, 32)
	if err != nil {
		return Transaction{}, fmt.Errorf("line %d: %w: invalid transaction id %q", r.line, ErrMalformedRecord, field("tx"))
	}

	tx := Transaction{
		Kind:   kind,
		Client: ClientID(client),
		Tx:     TxID(id),
	}

	if s := field("amount"); s != "" {
		amount, err := ParseMoney(s)
		if err != nil {
			return Transaction{}, fmt.Errorf("line %d: %w: %v", r.line, ErrMalformedRecord, err)
		}
		tx.Amount = &amount
	}

	return tx, nil
}
