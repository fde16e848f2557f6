package app

import (
	"context"
	"fmt"

	"github.com/vk/unitgrid/internal/catalog"
	"github.com/vk/unitgrid/internal/ctxlog"
	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
	"github.com/zclconf/go-cty/cty"
)

// Run resolves the configured reference on behalf of the client and prints
// the resulting object followed by the receipts the run wrote.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	client := urn.URN(a.config.Client)
	tree, err := a.grammar.Parse(ctx, client, a.config.Reference)
	if err != nil {
		return fmt.Errorf("failed to parse reference: %w", err)
	}

	declared, err := tree.Arguments()
	if err != nil {
		return err
	}
	for pos, title := range declared {
		if pos > len(a.config.Args) {
			return fmt.Errorf("argument #%d '%s' is required but only %d provided", pos, title, len(a.config.Args))
		}
	}

	values := make([]any, len(a.config.Args))
	for i, arg := range a.config.Args {
		values[i] = cty.StringVal(arg)
	}

	work := model.NewWork(
		client,
		a.config.Unit,
		model.NewSpec(tree.AsText()),
		model.LedgerCharger(a.registry, urn.URN(a.config.Operator)),
	)

	a.logger.Info("Instantiating reference.", "client", client, "reference", tree.AsText())
	object, err := tree.Instantiate(ctx, a.registry, model.NewArguments(work, values...))
	if err != nil {
		return fmt.Errorf("failed to instantiate %s: %w", tree.AsText(), err)
	}

	fmt.Fprintln(a.outW, catalog.Format(object))
	receipts := a.run.written()
	if len(receipts) > 0 {
		fmt.Fprintln(a.outW, renderReceipts(receipts))
	}
	a.logger.Info("Instantiation finished.", "receipts", len(receipts))
	return a.reportBalances(ctx)
}

// reportBalances prints the ledger balance of every requested identifier.
func (a *App) reportBalances(ctx context.Context) error {
	for _, raw := range a.config.Balances {
		id := urn.URN(raw)
		balance, err := a.ledger.Balance(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to read balance of '%s': %w", id, err)
		}
		fmt.Fprintf(a.outW, "balance %s: %s\n", id, balance)
	}
	return nil
}
