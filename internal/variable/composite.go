package variable

import (
	"context"

	"github.com/vk/unitgrid/internal/catalog"
	"github.com/vk/unitgrid/internal/ctxlog"
	"github.com/vk/unitgrid/internal/model"
)

// Composite calls a compiled constructor with its instantiated children.
type Composite struct {
	name     string
	ctor     catalog.Constructor
	children []model.Variable
}

// NewComposite builds a constructor call node.
func NewComposite(name string, ctor catalog.Constructor, children []model.Variable) (*Composite, error) {
	if !model.ValidName(name) {
		return nil, model.Errorf(model.KindValidation, "invalid constructor name %q", name)
	}
	if ctor == nil {
		return nil, model.Errorf(model.KindValidation, "constructor %q is nil", name)
	}
	return &Composite{name: name, ctor: ctor, children: copyNodes(children)}, nil
}

// Instantiate evaluates the children in order and hands them, together with
// the current Work, to the constructor.
func (c *Composite) Instantiate(ctx context.Context, users model.Users, args model.Arguments) (any, error) {
	values, err := instantiateAll(ctx, users, args, c.children)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Calling constructor.", "name", c.name, "args", len(values))
	object, err := c.ctor(ctx, args.Work(), values)
	if err != nil {
		return nil, model.Wrap(model.KindInstantiation, err, "constructor '%s' failed", c.name)
	}
	return object, nil
}

func (c *Composite) AsText() string {
	return c.name + "(" + joinText(c.children) + ")"
}

func (c *Composite) Arguments() (map[int]string, error) {
	return mergeArguments(c.children)
}
