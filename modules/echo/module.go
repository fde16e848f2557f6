package echo

import (
	"context"
	"strings"

	"github.com/vk/unitgrid/internal/catalog"
	"github.com/vk/unitgrid/internal/model"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Echo is a runtime object that repeats the values it was built with. It
// accepts the name of the reference that produced it.
type Echo struct {
	values []string
	ref    string
}

// Values returns the formatted arguments.
func (e *Echo) Values() []string {
	return append([]string(nil), e.values...)
}

// ReferenceName returns the tag given by the enclosing reference, if any.
func (e *Echo) ReferenceName() string {
	return e.ref
}

// SetReferenceName implements model.Nameable.
func (e *Echo) SetReferenceName(name string) error {
	e.ref = name
	return nil
}

func (e *Echo) String() string {
	text := strings.Join(e.values, " ")
	if e.ref == "" {
		return text
	}
	return e.ref + " " + text
}

// NewEcho is the constructor behind `echo(...)`.
func NewEcho(ctx context.Context, work model.Work, args []any) (any, error) {
	values := make([]string, len(args))
	for i, arg := range args {
		values[i] = catalog.Format(arg)
	}
	return &Echo{values: values}, nil
}

// Register registers the constructor with the engine.
func (m *Module) Register(c *catalog.Catalog) {
	c.Register("echo", NewEcho)
}
