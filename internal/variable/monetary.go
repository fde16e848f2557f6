package variable

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/unitgrid/internal/ctxlog"
	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
)

// monetary wraps the Work of a foreign unit. Accessors pass through; Charge
// bills the client in favour of the owner instead of the wrapped Work.
type monetary struct {
	origin model.Work
	users  model.Users
	client urn.URN
	owner  urn.URN
	label  string
}

func (m *monetary) Started() time.Time { return m.origin.Started() }
func (m *monetary) Owner() urn.URN { return m.origin.Owner() }
func (m *monetary) Unit() string { return m.origin.Unit() }
func (m *monetary) Spec() model.Spec { return m.origin.Spec() }

// Charge writes one receipt from client to owner. The amount is checked
// before anything reaches the ledger.
func (m *monetary) Charge(ctx context.Context, details string, amount model.Dollars) error {
	if amount.Points() <= 0 {
		return model.Errorf(model.KindValidation, "charge amount can be positive only, %s provided", amount)
	}
	receipt, err := model.NewReceipt(
		time.Now(),
		m.client,
		m.owner,
		fmt.Sprintf("%s: %s", m.Unit(), details),
		amount,
		m.label,
	)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Charging across tenants.",
		"payer", m.client,
		"payee", m.owner,
		"amount", amount.String(),
		"label", m.label,
	)
	return m.users.Charge(ctx, receipt)
}
