// Package catalog maps the names used in spec text (e.g. `echo`) to the
// compiled Go constructors that build the runtime objects.
//
// The catalog is populated once at startup by Modules and is read-only
// afterwards, so the grammar and every Composite node may share it across
// goroutines.
package catalog
