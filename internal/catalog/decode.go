package catalog

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Decode stores an instantiated argument into the value pointed to by
// target. Literals arrive as cty values and go through gocty; any other
// runtime object is assigned directly when its type fits.
func Decode(value any, target any) error {
	if v, ok := value.(cty.Value); ok {
		if v.IsNull() {
			return fmt.Errorf("cannot decode null value")
		}
		if err := gocty.FromCtyValue(v, target); err != nil {
			return fmt.Errorf("cannot decode %s into %T: %w", v.Type().FriendlyName(), target, err)
		}
		return nil
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}
	elem := rv.Elem()
	src := reflect.ValueOf(value)
	if !src.IsValid() {
		return fmt.Errorf("cannot decode nil into %s", elem.Type())
	}
	if !src.Type().AssignableTo(elem.Type()) {
		return fmt.Errorf("cannot decode %T into %s", value, elem.Type())
	}
	elem.Set(src)
	return nil
}

// Format renders an instantiated value for humans.
func Format(value any) string {
	switch v := value.(type) {
	case cty.Value:
		return formatCty(v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = Format(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatCty(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	if !v.IsKnown() {
		return "(unknown)"
	}
	switch v.Type() {
	case cty.String:
		return v.AsString()
	case cty.Number:
		return v.AsBigFloat().Text('f', -1)
	case cty.Bool:
		if v.True() {
			return "true"
		}
		return "false"
	}
	return v.GoString()
}
