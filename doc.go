// Package reckon replays a sequential log of financial transactions against
// per-client accounts and produces the resulting account balances.
//
// The core of the package is the Ledger: a state machine that applies
// deposits, withdrawals, disputes, resolutions, and chargebacks in strict
// input order, plus the bookkeeping needed for a dispute to reference a
// prior deposit by its transaction id alone.
//
// The design makes a few deliberate policy choices:
//   - All amounts are exact decimals; there is no binary floating point
//     anywhere, so total == available + held holds bit-exactly after any
//     transaction sequence.
//   - Available funds may go negative while a dispute is open: the disputed
//     amount is frozen even when the client already withdrew part of it.
//   - A locked account records that a chargeback occurred. It is informational
//     only: it never blocks further transactions and is never cleared.
//   - Disputing a deposit consumes its entry in the disputable-deposit cache,
//     so a deposit can be disputed at most once; disputes, resolves, and
//     chargebacks referencing an unknown or already-settled transaction id
//     are silent no-ops.
//
// This package serves as the foundational logic for the `reckon` command-line
// tool, a deterministic single-pass batch processor.
package reckon
