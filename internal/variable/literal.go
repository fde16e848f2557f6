package variable

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/unitgrid/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// Literal is a primitive value written inline in a spec.
type Literal struct {
	value cty.Value
}

// NewLiteral wraps a known primitive cty value.
func NewLiteral(value cty.Value) *Literal {
	return &Literal{value: value}
}

// Value returns the wrapped value.
func (l *Literal) Value() cty.Value {
	return l.value
}

// Instantiate returns the literal itself; constructors decode it with
// catalog.Decode.
func (l *Literal) Instantiate(ctx context.Context, users model.Users, args model.Arguments) (any, error) {
	return l.value, nil
}

// AsText renders the value with HCL literal syntax.
func (l *Literal) AsText() string {
	return strings.TrimSpace(string(hclwrite.TokensForValue(l.value).Bytes()))
}

// Arguments is always empty for a literal.
func (l *Literal) Arguments() (map[int]string, error) {
	return map[int]string{}, nil
}
