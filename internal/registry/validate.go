package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/unitgrid/internal/ctxlog"
	"github.com/vk/unitgrid/internal/model"
)

// reserver is implemented by grammars that claim some names for themselves.
type reserver interface {
	Reserved(name string) bool
}

// Validate parses every stored spec on behalf of its owner and reports all
// failures at once.
func (r *Registry) Validate(ctx context.Context, grammar model.Grammar) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string
	reserved, _ := grammar.(reserver)

	for _, id := range r.URNs() {
		user, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		for _, name := range user.Units() {
			if reserved != nil && reserved.Reserved(name) {
				errs = append(errs, fmt.Sprintf("unit '%s' of '%s': name is taken by a built-in constructor", name, id))
				continue
			}
			unit, err := user.Get(name)
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			if _, err := grammar.Parse(ctx, id, unit.Spec().Text()); err != nil {
				errs = append(errs, fmt.Sprintf("unit '%s' of '%s': %v", name, id, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "users", len(r.URNs()))
	return nil
}
