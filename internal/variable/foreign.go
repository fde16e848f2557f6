package variable

import (
	"context"

	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
)

// Foreign references a unit of an explicit owner: `owner:name(c1,c2)`.
//
// Two Foreign nodes are Equal when they share the grammar, the owner and the
// name. Children take no part in equality: the node identifies which unit is
// called, not with which arguments. Anything keyed on Equal collapses calls
// that differ only in their arguments.
type Foreign struct {
	ref reference
}

// NewForeign builds a foreign reference. The name must match
// `[A-Za-z0-9_-]+`; the children slice is copied.
func NewForeign(grammar model.Grammar, client, owner urn.URN, name string, children []model.Variable) (*Foreign, error) {
	if !model.ValidName(name) {
		return nil, model.Errorf(model.KindValidation, "invalid unit name %q", name)
	}
	return &Foreign{ref: reference{
		grammar:  grammar,
		client:   client,
		owner:    owner,
		name:     name,
		children: copyNodes(children),
	}}, nil
}

func (f *Foreign) Client() urn.URN { return f.ref.client }
func (f *Foreign) Owner() urn.URN { return f.ref.owner }
func (f *Foreign) Name() string { return f.ref.name }

// Children returns a copy of the argument nodes.
func (f *Foreign) Children() []model.Variable {
	return copyNodes(f.ref.children)
}

// Instantiate resolves the referenced unit. When the client is not the
// owner, charges made while the unit is built are billed from client to
// owner.
func (f *Foreign) Instantiate(ctx context.Context, users model.Users, args model.Arguments) (any, error) {
	return f.ref.instantiate(ctx, users, args)
}

// AsText renders `owner:name(c1,c2,...)`.
func (f *Foreign) AsText() string {
	return f.ref.owner.String() + ":" + f.ref.name + "(" + joinText(f.ref.children) + ")"
}

// Arguments merges the children's declarations, later children winning.
func (f *Foreign) Arguments() (map[int]string, error) {
	return mergeArguments(f.ref.children)
}

// Equal compares grammar, owner and name only.
func (f *Foreign) Equal(other model.Variable) bool {
	o, ok := other.(*Foreign)
	if !ok || o == nil {
		return false
	}
	return f.ref.grammar == o.ref.grammar && f.ref.owner == o.ref.owner && f.ref.name == o.ref.name
}
