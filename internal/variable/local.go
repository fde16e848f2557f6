package variable

import (
	"context"

	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
)

// Local references another unit of the owner the spec was parsed for:
// `name(c1,c2)`. It never crosses a tenant boundary, so charges are never
// intercepted.
type Local struct {
	ref reference
}

// NewLocal builds a local reference.
func NewLocal(grammar model.Grammar, owner urn.URN, name string, children []model.Variable) (*Local, error) {
	if !model.ValidName(name) {
		return nil, model.Errorf(model.KindValidation, "invalid unit name %q", name)
	}
	return &Local{ref: reference{
		grammar:  grammar,
		client:   owner,
		owner:    owner,
		name:     name,
		children: copyNodes(children),
	}}, nil
}

func (l *Local) Instantiate(ctx context.Context, users model.Users, args model.Arguments) (any, error) {
	return l.ref.instantiate(ctx, users, args)
}

func (l *Local) AsText() string {
	return l.ref.name + "(" + joinText(l.ref.children) + ")"
}

func (l *Local) Arguments() (map[int]string, error) {
	return mergeArguments(l.ref.children)
}
