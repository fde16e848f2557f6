package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/unitgrid/internal/model"
)

// Constructor builds a runtime object from the Work and the already
// instantiated child values.
type Constructor func(ctx context.Context, work model.Work, args []any) (any, error)

// Module is the interface that every group of constructors implements to be
// registered.
type Module interface {
	Register(c *Catalog)
}

// Catalog holds the registered constructors for a single engine instance.
type Catalog struct {
	constructors map[string]Constructor
}

// New creates an empty catalog and registers the given modules into it.
func New(modules ...Module) *Catalog {
	c := &Catalog{constructors: make(map[string]Constructor)}
	for _, mod := range modules {
		mod.Register(c)
	}
	return c
}

// Register adds a constructor. Registering the same name twice or a name the
// grammar cannot express is a programmer error and panics.
func (c *Catalog) Register(name string, fn Constructor) {
	if !model.ValidName(name) {
		panic(fmt.Sprintf("constructor name '%s' is not a valid unit name", name))
	}
	if _, exists := c.constructors[name]; exists {
		panic(fmt.Sprintf("constructor with name '%s' already registered", name))
	}
	slog.Debug("Registering constructor.", "name", name)
	c.constructors[name] = fn
}

// Lookup returns the constructor registered under name.
func (c *Catalog) Lookup(name string) (Constructor, bool) {
	if c == nil {
		return nil, false
	}
	fn, ok := c.constructors[name]
	return fn, ok
}

// Names lists registered constructors in ascending order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.constructors))
	for name := range c.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
