package model

import (
	"errors"
	"fmt"
)

// Kind classifies a resolution failure. Callers normally only need the
// message; the kind exists so tests and the CLI can tell the cases apart.
type Kind int

const (
	// KindInstantiation is the generic failure of a runtime constructor.
	KindInstantiation Kind = iota
	// KindValidation is a malformed name or a non-positive charge.
	KindValidation
	// KindUnitNotFound means the owner has no unit with the requested name.
	KindUnitNotFound
	// KindParse is a malformed spec text reported by the grammar.
	KindParse
	// KindCapability is a failure while tagging a result with its reference name.
	KindCapability
)

// String returns a short, human readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnitNotFound:
		return "unit not found"
	case KindParse:
		return "parse"
	case KindCapability:
		return "capability"
	default:
		return "instantiation"
	}
}

// Error is the single error surface of the engine. Nested references do not
// build a type hierarchy; only the message chain survives.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds a new Error of the given kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a message to err under the given kind. A nil err yields nil.
func Wrap(kind Kind, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// IsKind reports whether any Error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
