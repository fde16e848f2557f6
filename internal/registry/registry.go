package registry

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
)

// Registry holds all users and their units for a single application
// instance. It implements model.Users.
type Registry struct {
	mu     sync.RWMutex
	users  map[urn.URN]*User
	ledger model.Ledger
}

// New creates and initializes a new Registry writing receipts to ledger.
func New(ledger model.Ledger) *Registry {
	return &Registry{
		users:  make(map[urn.URN]*User),
		ledger: ledger,
	}
}

// Add returns the user with the given identifier, creating it on first use.
func (r *Registry) Add(id urn.URN) *User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return user
	}
	slog.Debug("Registering user.", "urn", id)
	user := &User{id: id, units: make(map[string]*Unit)}
	r.users[id] = user
	return user
}

// Get implements model.Users.
func (r *Registry) Get(ctx context.Context, id urn.URN) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, model.Errorf(model.KindUnitNotFound, "user '%s' not found", id)
	}
	return user, nil
}

// Charge implements model.Users by appending the receipt to the ledger.
func (r *Registry) Charge(ctx context.Context, receipt model.Receipt) error {
	if r.ledger == nil {
		return model.Errorf(model.KindInstantiation, "no ledger configured to record %s from '%s' to '%s'", receipt.Amount(), receipt.Payer(), receipt.Payee())
	}
	if err := r.ledger.Append(ctx, receipt); err != nil {
		return model.Wrap(model.KindInstantiation, err, "failed to record receipt %s", receipt.ID())
	}
	return nil
}

// URNs lists registered users in ascending order.
func (r *Registry) URNs() []urn.URN {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]urn.URN, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) < 0 })
	return ids
}

// User is one tenant. It implements model.User.
type User struct {
	mu    sync.RWMutex
	id    urn.URN
	units map[string]*Unit
}

// Define stores or replaces a unit. Names outside `[A-Za-z0-9_-]+` are
// rejected.
func (u *User) Define(name string, spec model.Spec) error {
	if !model.ValidName(name) {
		return model.Errorf(model.KindValidation, "invalid unit name %q for '%s'", name, u.id)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.units[name] = &Unit{name: name, spec: spec}
	return nil
}

func (u *User) URN() urn.URN {
	return u.id
}

// Units implements model.User.
func (u *User) Units() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	names := make([]string, 0, len(u.units))
	for name := range u.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get implements model.User.
func (u *User) Get(name string) (model.Unit, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	unit, ok := u.units[name]
	if !ok {
		return nil, model.Errorf(model.KindUnitNotFound, "unit '%s' not found in '%s'", name, u.id)
	}
	return unit, nil
}

// Unit is a named spec. It implements model.Unit.
type Unit struct {
	name string
	spec model.Spec
}

func (u *Unit) Name() string { return u.name }
func (u *Unit) Spec() model.Spec { return u.spec }
