package model

import (
	"context"
	"regexp"

	"github.com/vk/unitgrid/internal/urn"
)

// Variable is a node of an immutable spec tree.
type Variable interface {
	// Instantiate produces a fresh runtime value.
	Instantiate(ctx context.Context, users Users, args Arguments) (any, error)
	// AsText serializes the node back into the reference grammar.
	AsText() string
	// Arguments maps the positional arguments the node requires to their titles.
	Arguments() (map[int]string, error)
}

// Grammar turns spec text into a Variable tree. The owner is the identity on
// whose behalf the text is parsed; it becomes the client of every foreign
// reference in the result.
type Grammar interface {
	Parse(ctx context.Context, owner urn.URN, text string) (Variable, error)
}

// Nameable is the optional capability of runtime objects that accept the
// name of the reference that produced them.
type Nameable interface {
	SetReferenceName(name string) error
}

// nameRegex is the character class of unit and constructor names.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidName reports whether name may be used as a unit name.
func ValidName(name string) bool {
	return nameRegex.MatchString(name)
}
