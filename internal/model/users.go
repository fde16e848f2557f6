package model

import (
	"context"

	"github.com/vk/unitgrid/internal/urn"
)

// Users is the tenant registry consumed by the engine.
type Users interface {
	// Get fails if the identifier is unknown.
	Get(ctx context.Context, id urn.URN) (User, error)
	// Charge records a receipt in the ledger.
	Charge(ctx context.Context, receipt Receipt) error
}

// User is one tenant and the units they own.
type User interface {
	URN() urn.URN
	// Units lists unit names in ascending order.
	Units() []string
	Get(name string) (Unit, error)
}

// Unit is a named spec owned by a user.
type Unit interface {
	Name() string
	Spec() Spec
}

// Ledger is the append-only store of receipts.
type Ledger interface {
	Append(ctx context.Context, receipt Receipt) error
}
