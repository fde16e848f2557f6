// Package app wires the engine together for one command-line invocation:
// it loads the registry, opens the ledger, builds the constructor catalog
// and the grammar, resolves the requested reference on behalf of the client
// and reports the result together with the receipts the run produced.
package app
