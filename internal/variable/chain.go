package variable

import (
	"context"
	"strings"

	"github.com/vk/unitgrid/internal/urn"
)

// activeKey carries the references being instantiated on the current path.
type activeKey struct{}

// frame is one reference on the active path.
type frame struct {
	owner urn.URN
	name  string
}

func (f frame) String() string {
	return f.owner.String() + ":" + f.name
}

// enter pushes f onto the active path of ctx. It reports false, together
// with the path that closes the loop, when f is already being instantiated.
func enter(ctx context.Context, f frame) (context.Context, string, bool) {
	active, _ := ctx.Value(activeKey{}).([]frame)
	for i, seen := range active {
		if seen == f {
			path := make([]string, 0, len(active)-i+1)
			for _, step := range active[i:] {
				path = append(path, step.String())
			}
			path = append(path, f.String())
			return ctx, strings.Join(path, " -> "), false
		}
	}
	next := make([]frame, len(active), len(active)+1)
	copy(next, active)
	return context.WithValue(ctx, activeKey{}, append(next, f)), "", true
}
