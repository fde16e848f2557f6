package variable

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/unitgrid/internal/ctxlog"
	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
)

// reference is the resolution shared by Local and Foreign nodes.
type reference struct {
	grammar  model.Grammar
	client   urn.URN
	owner    urn.URN
	name     string
	children []model.Variable
}

// instantiate resolves the owner's unit, evaluates the children, parses the
// unit's spec on the owner's behalf, instantiates it and tags the result.
func (r *reference) instantiate(ctx context.Context, users model.Users, args model.Arguments) (any, error) {
	logger := ctxlog.FromContext(ctx).With("owner", r.owner, "unit", r.name)

	user, err := users.Get(ctx, r.owner)
	if err != nil {
		return nil, model.Wrap(model.KindUnitNotFound, err, "unit '%s' not found in '%s'", r.name, r.owner)
	}
	if !slices.Contains(user.Units(), r.name) {
		return nil, model.Errorf(model.KindUnitNotFound, "unit '%s' not found in '%s'", r.name, r.owner)
	}
	unit, err := user.Get(r.name)
	if err != nil {
		return nil, err
	}

	work := args.Work()
	if work == nil {
		return nil, model.Errorf(model.KindInstantiation, "no work provided to instantiate '%s'", r.name)
	}
	if r.client != r.owner {
		logger.Debug("Intercepting charges across tenants.", "client", r.client)
		work = &monetary{origin: work, users: users, client: r.client, owner: r.owner, label: r.name}
	}

	values, err := instantiateAll(ctx, users, args.WithWork(work), r.children)
	if err != nil {
		return nil, err
	}

	inner, path, ok := enter(ctx, frame{owner: r.owner, name: r.name})
	if !ok {
		return nil, model.Errorf(model.KindInstantiation, "cyclic reference: %s", path)
	}

	logger.Debug("Parsing unit spec.")
	tree, err := r.grammar.Parse(inner, user.URN(), unit.Spec().Text())
	if err != nil {
		return nil, err
	}

	object, err := tree.Instantiate(inner, users, model.NewArguments(work, values...))
	if err != nil {
		return nil, err
	}
	return alter(ctx, object, r.name)
}

// alter hands the reference name to objects that accept one. Objects
// without the capability are returned unchanged.
func alter(ctx context.Context, object any, name string) (result any, err error) {
	named, ok := object.(model.Nameable)
	if !ok {
		return object, nil
	}
	tag := fmt.Sprintf("`%s`", name)
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = model.Errorf(model.KindCapability, "failed to name %T as %s: %v", object, tag, rec)
		}
	}()
	if err := named.SetReferenceName(tag); err != nil {
		return nil, model.Wrap(model.KindCapability, err, "failed to name %T as %s", object, tag)
	}
	ctxlog.FromContext(ctx).Debug("Tagged object with reference name.", "name", tag)
	return object, nil
}
