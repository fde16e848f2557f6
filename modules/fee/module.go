package fee

import (
	"context"
	"fmt"

	"github.com/vk/unitgrid/internal/catalog"
	"github.com/vk/unitgrid/internal/ctxlog"
	"github.com/vk/unitgrid/internal/model"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// NewFee is the constructor behind `fee(amount, details, value)`. It charges
// amount on the current Work and yields value unchanged. The amount is
// either a number of dollars or a string such as "$0.25".
func NewFee(ctx context.Context, work model.Work, args []any) (any, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("fee expects 3 arguments (amount, details, value), %d provided", len(args))
	}
	amount, err := model.ParseDollars(catalog.Format(args[0]))
	if err != nil {
		return nil, err
	}
	var details string
	if err := catalog.Decode(args[1], &details); err != nil {
		return nil, fmt.Errorf("fee details: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("Charging fee.", "unit", work.Unit(), "amount", amount.String())
	if err := work.Charge(ctx, details, amount); err != nil {
		return nil, err
	}
	return args[2], nil
}

// Register registers the constructor with the engine.
func (m *Module) Register(c *catalog.Catalog) {
	c.Register("fee", NewFee)
}
