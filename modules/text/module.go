package text

import (
	"context"
	"strings"

	"github.com/vk/unitgrid/internal/catalog"
	"github.com/vk/unitgrid/internal/model"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// NewText joins its arguments with spaces. The result is a plain string and
// carries no reference name.
func NewText(ctx context.Context, work model.Work, args []any) (any, error) {
	return join(args, " "), nil
}

// NewConcat joins its arguments without a separator.
func NewConcat(ctx context.Context, work model.Work, args []any) (any, error) {
	return join(args, ""), nil
}

func join(args []any, sep string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = catalog.Format(arg)
	}
	return strings.Join(parts, sep)
}

// Register registers the constructors with the engine.
func (m *Module) Register(c *catalog.Catalog) {
	c.Register("text", NewText)
	c.Register("concat", NewConcat)
}
