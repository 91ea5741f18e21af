package reckon

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Account holds the balance of a single client.
//
// Invariant: Total == Available + Held after every successfully applied
// transaction. Available may go negative while a dispute is open. Locked
// records that a chargeback occurred; it never blocks processing and is
// never cleared.
type Account struct {
	Client    ClientID
	Available Money
	Held      Money
	Total     Money
	Locked    bool

	disputed map[TxID]Money // open disputes, by the disputed deposit's id
}

func newAccount(client ClientID) *Account {
	return &Account{
		Client:   client,
		disputed: make(map[TxID]Money),
	}
}

// Ledger owns the per-client account states plus the bookkeeping needed to
// correlate a dispute, resolve, or chargeback with the deposit it targets.
//
// A Ledger is created empty, mutated one transaction at a time by Apply, and
// read once at the end of a run through Accounts.
type Ledger struct {
	accounts map[ClientID]*Account
	deposits map[TxID]Money // disputable deposits, consumed on dispute
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[ClientID]*Account),
		deposits: make(map[TxID]Money),
	}
}

// Account returns the account of the given client, or nil if the client was
// never referenced.
func (l *Ledger) Account(client ClientID) *Account {
	return l.accounts[client]
}

// account returns the client's account, creating it on first reference.
func (l *Ledger) account(client ClientID) *Account {
	a, ok := l.accounts[client]
	if !ok {
		a = newAccount(client)
		l.accounts[client] = a
	}
	return a
}

// Apply processes one transaction record, mutating the ledger in place.
//
// Records must be applied in input order. A deposit or withdrawal without an
// amount fails with ErrMissingAmount; a withdrawal exceeding the available
// funds fails with ErrInsufficientFunds and leaves the account unchanged.
// Both are fatal to the batch. A dispute, resolve, or chargeback referencing
// an unknown or already-settled transaction id is a silent no-op: such
// references are common in real logs and must not abort a long batch.
func (l *Ledger) Apply(tx Transaction) error {
	account := l.account(tx.Client)

	switch tx.Kind {
	case Deposit:
		amount, err := tx.amount()
		if err != nil {
			return err
		}
		account.Available = account.Available.Add(amount)
		account.Total = account.Total.Add(amount)
		// Only deposits can be disputed. A duplicate deposit id overwrites
		// the cached amount; ids are unique in well-formed input.
		l.deposits[tx.Tx] = amount

	case Withdrawal:
		amount, err := tx.amount()
		if err != nil {
			return err
		}
		if !account.Available.GreaterThanOrEqual(amount) {
			return fmt.Errorf("tx %d: %w", tx.Tx, ErrInsufficientFunds)
		}
		account.Available = account.Available.Sub(amount)
		account.Total = account.Total.Sub(amount)

	case Dispute:
		// Consuming the cache entry makes a second dispute of the same
		// deposit, or a dispute after its resolve, a deterministic no-op.
		if amount, ok := l.deposits[tx.Tx]; ok {
			delete(l.deposits, tx.Tx)
			account.disputed[tx.Tx] = amount
			account.Held = account.Held.Add(amount)
			// Available can go negative here: the disputed funds are frozen
			// even when the client already withdrew part of them.
			account.Available = account.Available.Sub(amount)
		}

	case Resolve:
		if amount, ok := account.disputed[tx.Tx]; ok {
			delete(account.disputed, tx.Tx)
			account.Held = account.Held.Sub(amount)
			account.Available = account.Available.Add(amount)
		}

	case Chargeback:
		if amount, ok := account.disputed[tx.Tx]; ok {
			delete(account.disputed, tx.Tx)
			account.Held = account.Held.Sub(amount)
			// Available was already debited when the dispute opened.
			account.Total = account.Total.Sub(amount)
			account.Locked = true
		}

	default:
		return fmt.Errorf("tx %d: %w: unknown transaction type %q", tx.Tx, ErrMalformedRecord, tx.Kind)
	}

	return nil
}

// Accounts iterates over the final state of all known accounts, ordered by
// client id. Consumers must not rely on the order: it is a courtesy of this
// implementation, not part of the contract.
func (l *Ledger) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		clients := slices.Collect(maps.Keys(l.accounts))
		slices.Sort(clients)
		for _, client := range clients {
			if !yield(*l.accounts[client]) {
				return
			}
		}
	}
}
