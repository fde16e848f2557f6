package env_vars

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/unitgrid/internal/catalog"
	"github.com/vk/unitgrid/internal/model"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// NewEnv is the constructor behind `env("NAME")` and `env("NAME","default")`.
func NewEnv(ctx context.Context, work model.Work, args []any) (any, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("env expects a name and an optional default, %d arguments provided", len(args))
	}
	var name string
	if err := catalog.Decode(args[0], &name); err != nil {
		return nil, fmt.Errorf("env name: %w", err)
	}
	if value, ok := os.LookupEnv(name); ok {
		return value, nil
	}
	if len(args) == 2 {
		return catalog.Format(args[1]), nil
	}
	return nil, fmt.Errorf("environment variable '%s' is not set", name)
}

// Register registers the constructor with the engine.
func (m *Module) Register(c *catalog.Catalog) {
	c.Register("env", NewEnv)
}
