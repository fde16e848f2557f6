package variable

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/unitgrid/internal/model"
)

// Arg refers to a positional argument of the enclosing unit. Position 0 is
// the Work itself.
type Arg struct {
	pos   int
	title string
}

// NewArg builds an argument reference.
func NewArg(pos int, title string) (*Arg, error) {
	if pos < 0 {
		return nil, model.Errorf(model.KindValidation, "argument position must not be negative, %d provided", pos)
	}
	if strings.ContainsAny(title, "{}") {
		return nil, model.Errorf(model.KindValidation, "argument title %q must not contain braces", title)
	}
	return &Arg{pos: pos, title: title}, nil
}

// Instantiate picks the value at the argument's position.
func (a *Arg) Instantiate(ctx context.Context, users model.Users, args model.Arguments) (any, error) {
	value, err := args.Get(a.pos)
	if err != nil {
		return nil, model.Wrap(model.KindInstantiation, err, "argument '%s' is missing", a.title)
	}
	return value, nil
}

func (a *Arg) AsText() string {
	return fmt.Sprintf("${%d:%s}", a.pos, a.title)
}

func (a *Arg) Arguments() (map[int]string, error) {
	return map[int]string{a.pos: a.title}, nil
}
