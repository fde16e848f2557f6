package print

import (
	"context"

	"github.com/vk/unitgrid/internal/catalog"
	"github.com/vk/unitgrid/internal/ctxlog"
	"github.com/vk/unitgrid/internal/model"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// NewPrint logs its arguments on behalf of the current unit and yields the
// last one, so `print(...)` can wrap any value.
func NewPrint(ctx context.Context, work model.Work, args []any) (any, error) {
	logger := ctxlog.FromContext(ctx)
	for i, arg := range args {
		logger.Info("Printing value.", "unit", work.Unit(), "owner", work.Owner(), "index", i, "value", catalog.Format(arg))
	}
	if len(args) == 0 {
		return nil, nil
	}
	return args[len(args)-1], nil
}

// Register registers the constructor with the engine.
func (m *Module) Register(c *catalog.Catalog) {
	c.Register("print", NewPrint)
}
