package model

import "fmt"

// Arguments is the positional argument list handed to Variable.Instantiate.
// Position 0 always holds the Work; the rest are the values produced by the
// caller's children, in declaration order.
type Arguments struct {
	work   Work
	values []any
}

// NewArguments builds an argument list. The values slice is copied.
func NewArguments(work Work, values ...any) Arguments {
	copied := make([]any, len(values))
	copy(copied, values)
	return Arguments{work: work, values: copied}
}

// Work returns the execution context at position 0.
func (a Arguments) Work() Work {
	return a.work
}

// Len counts every position, including the Work.
func (a Arguments) Len() int {
	return len(a.values) + 1
}

// Get returns the value at the given position.
func (a Arguments) Get(pos int) (any, error) {
	if pos == 0 {
		return a.work, nil
	}
	if pos < 0 || pos > len(a.values) {
		return nil, fmt.Errorf("argument #%d is out of range, %d provided", pos, a.Len())
	}
	return a.values[pos-1], nil
}

// Values returns a copy of the positional values after the Work.
func (a Arguments) Values() []any {
	copied := make([]any, len(a.values))
	copy(copied, a.values)
	return copied
}

// WithWork returns the same list with a different Work at position 0.
func (a Arguments) WithWork(work Work) Arguments {
	return Arguments{work: work, values: a.values}
}
