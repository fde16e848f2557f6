package model

import (
	"context"
	"time"

	"github.com/vk/unitgrid/internal/urn"
)

// Work is the execution context of the unit currently being instantiated.
type Work interface {
	Started() time.Time
	Owner() urn.URN
	Unit() string
	Spec() Spec
	Charge(ctx context.Context, details string, amount Dollars) error
}

// Charger is the charging path of a top-level Work.
type Charger func(ctx context.Context, w Work, details string, amount Dollars) error

// simpleWork is the Work created by the outermost caller.
type simpleWork struct {
	started time.Time
	owner   urn.URN
	unit    string
	spec    Spec
	charger Charger
}

// NewWork creates the context for the outermost unit invocation.
func NewWork(owner urn.URN, unit string, spec Spec, charger Charger) Work {
	return &simpleWork{
		started: time.Now().UTC(),
		owner:   owner,
		unit:    unit,
		spec:    spec,
		charger: charger,
	}
}

func (w *simpleWork) Started() time.Time { return w.started }
func (w *simpleWork) Owner() urn.URN { return w.owner }
func (w *simpleWork) Unit() string { return w.unit }
func (w *simpleWork) Spec() Spec { return w.spec }

// Charge validates the amount and hands it to the configured charger.
func (w *simpleWork) Charge(ctx context.Context, details string, amount Dollars) error {
	if amount.Points() <= 0 {
		return Errorf(KindValidation, "charge amount can be positive only, %s provided", amount)
	}
	if w.charger == nil {
		return Errorf(KindValidation, "work %q of %s cannot be charged", w.unit, w.owner)
	}
	return w.charger(ctx, w, details, amount)
}

// LedgerCharger returns a Charger that bills the work's owner in favour of
// payee, labelling the receipt with the unit name.
func LedgerCharger(users Users, payee urn.URN) Charger {
	return func(ctx context.Context, w Work, details string, amount Dollars) error {
		receipt, err := NewReceipt(time.Now(), w.Owner(), payee, details, amount, w.Unit())
		if err != nil {
			return err
		}
		return users.Charge(ctx, receipt)
	}
}
