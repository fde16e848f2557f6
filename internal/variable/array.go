package variable

import (
	"context"

	"github.com/vk/unitgrid/internal/model"
)

// Array is an ordered list of nodes; it instantiates into []any.
type Array struct {
	items []model.Variable
}

// NewArray builds an array node. The items slice is copied.
func NewArray(items []model.Variable) *Array {
	return &Array{items: copyNodes(items)}
}

func (a *Array) Instantiate(ctx context.Context, users model.Users, args model.Arguments) (any, error) {
	return instantiateAll(ctx, users, args, a.items)
}

func (a *Array) AsText() string {
	return "[" + joinText(a.items) + "]"
}

func (a *Array) Arguments() (map[int]string, error) {
	return mergeArguments(a.items)
}
