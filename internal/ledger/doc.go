// Package ledger stores billing receipts. Both implementations are
// append-only from the engine's point of view; the read methods exist for
// reporting.
package ledger
