package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/vk/unitgrid/internal/urn"
)

// Receipt is an immutable record of a metered charge between two tenants.
type Receipt struct {
	id      string
	time    time.Time
	payer   urn.URN
	payee   urn.URN
	details string
	amount  Dollars
	label   string
}

// NewReceipt builds a receipt with a fresh identifier. Non-positive amounts
// are rejected before anything is constructed.
func NewReceipt(at time.Time, payer, payee urn.URN, details string, amount Dollars, label string) (Receipt, error) {
	if amount.Points() <= 0 {
		return Receipt{}, Errorf(KindValidation, "charge amount can be positive only, %s provided", amount)
	}
	return Receipt{
		id:      uuid.NewString(),
		time:    at.UTC(),
		payer:   payer,
		payee:   payee,
		details: details,
		amount:  amount,
		label:   label,
	}, nil
}

// RestoreReceipt rebuilds a receipt read back from storage.
func RestoreReceipt(id string, at time.Time, payer, payee urn.URN, details string, amount Dollars, label string) Receipt {
	return Receipt{id: id, time: at.UTC(), payer: payer, payee: payee, details: details, amount: amount, label: label}
}

func (r Receipt) ID() string { return r.id }
func (r Receipt) Time() time.Time { return r.time }
func (r Receipt) Payer() urn.URN { return r.payer }
func (r Receipt) Payee() urn.URN { return r.payee }
func (r Receipt) Details() string { return r.details }
func (r Receipt) Amount() Dollars { return r.amount }
func (r Receipt) Label() string { return r.label }
