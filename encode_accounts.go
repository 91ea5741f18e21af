package reckon

import (
	"encoding/csv"
	"io"
	"strconv"
)

// EncodeAccounts writes the final state of all accounts to 'w' as CSV.
//
// The output has a header row `client,available,held,total,locked`, one row
// per known account, decimal fields in plain notation and locked rendered as
// true/false.
func EncodeAccounts(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for account := range l.Accounts() {
		record := []string{
			strconv.FormatUint(uint64(account.Client), 10),
			account.Available.String(),
			account.Held.String(),
			account.Total.String(),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
