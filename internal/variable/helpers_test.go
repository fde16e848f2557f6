package variable

import (
	"context"
	"sort"
	"sync"

	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
)

// fakeGrammar returns prebuilt trees keyed by spec text.
type fakeGrammar struct {
	trees map[string]func(g *fakeGrammar, owner urn.URN) model.Variable
	calls []urn.URN
}

func newFakeGrammar() *fakeGrammar {
	return &fakeGrammar{trees: make(map[string]func(*fakeGrammar, urn.URN) model.Variable)}
}

func (g *fakeGrammar) on(text string, build func(g *fakeGrammar, owner urn.URN) model.Variable) {
	g.trees[text] = build
}

func (g *fakeGrammar) Parse(ctx context.Context, owner urn.URN, text string) (model.Variable, error) {
	g.calls = append(g.calls, owner)
	build, ok := g.trees[text]
	if !ok {
		return nil, model.Errorf(model.KindParse, "cannot parse %q", text)
	}
	return build(g, owner), nil
}

type fakeUnit struct {
	name string
	spec model.Spec
}

func (u fakeUnit) Name() string { return u.name }
func (u fakeUnit) Spec() model.Spec { return u.spec }

type fakeUser struct {
	id    urn.URN
	units map[string]string
}

func (u *fakeUser) URN() urn.URN { return u.id }

func (u *fakeUser) Units() []string {
	names := make([]string, 0, len(u.units))
	for name := range u.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (u *fakeUser) Get(name string) (model.Unit, error) {
	text, ok := u.units[name]
	if !ok {
		return nil, model.Errorf(model.KindUnitNotFound, "unit '%s' not found in '%s'", name, u.id)
	}
	return fakeUnit{name: name, spec: model.NewSpec(text)}, nil
}

// fakeUsers is an in-memory registry that keeps every receipt.
type fakeUsers struct {
	mu       sync.Mutex
	users    map[urn.URN]*fakeUser
	receipts []model.Receipt
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[urn.URN]*fakeUser)}
}

func (f *fakeUsers) add(id string, units map[string]string) {
	if units == nil {
		units = map[string]string{}
	}
	f.users[urn.URN(id)] = &fakeUser{id: urn.URN(id), units: units}
}

func (f *fakeUsers) Get(ctx context.Context, id urn.URN) (model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, model.Errorf(model.KindUnitNotFound, "user '%s' not found", id)
	}
	return user, nil
}

func (f *fakeUsers) Charge(ctx context.Context, receipt model.Receipt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipts = append(f.receipts, receipt)
	return nil
}

// selfCharges counts charges that took the top-level work's own path.
type selfCharges struct {
	details []string
}

func (s *selfCharges) charger() model.Charger {
	return func(ctx context.Context, w model.Work, details string, amount model.Dollars) error {
		s.details = append(s.details, details)
		return nil
	}
}

// funcVar is a Variable driven by a closure.
type funcVar struct {
	text string
	args map[int]string
	fn   func(ctx context.Context, args model.Arguments) (any, error)
}

func (v *funcVar) Instantiate(ctx context.Context, users model.Users, args model.Arguments) (any, error) {
	return v.fn(ctx, args)
}

func (v *funcVar) AsText() string { return v.text }

func (v *funcVar) Arguments() (map[int]string, error) {
	if v.args == nil {
		return map[int]string{}, nil
	}
	return v.args, nil
}

// charging returns a node that charges amount on the current Work and then
// produces result.
func charging(details string, amount model.Dollars, result any) *funcVar {
	return &funcVar{
		text: "charge()",
		fn: func(ctx context.Context, args model.Arguments) (any, error) {
			if err := args.Work().Charge(ctx, details, amount); err != nil {
				return nil, err
			}
			return result, nil
		},
	}
}

// named records the reference name it was given.
type named struct {
	ref string
	err error
}

func (n *named) SetReferenceName(name string) error {
	if n.err != nil {
		return n.err
	}
	n.ref = name
	return nil
}

type panicky struct{}

func (panicky) SetReferenceName(name string) error {
	panic("boom")
}

func mustForeign(g model.Grammar, client, owner, name string, children ...model.Variable) *Foreign {
	f, err := NewForeign(g, urn.URN(client), urn.URN(owner), name, children)
	if err != nil {
		panic(err)
	}
	return f
}

func topWork(owner string, charges *selfCharges) model.Work {
	return model.NewWork(urn.URN(owner), "top", model.NewSpec(""), charges.charger())
}
