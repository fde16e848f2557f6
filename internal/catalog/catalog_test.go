package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/unitgrid/internal/model"
	"github.com/zclconf/go-cty/cty"
)

type noopModule struct{ names []string }

func (m noopModule) Register(c *Catalog) {
	for _, name := range m.names {
		c.Register(name, func(ctx context.Context, work model.Work, args []any) (any, error) {
			return nil, nil
		})
	}
}

func TestCatalog_RegisterAndLookup(t *testing.T) {
	c := New(noopModule{names: []string{"zeta", "alpha"}})

	_, ok := c.Lookup("alpha")
	assert.True(t, ok)
	_, ok = c.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"alpha", "zeta"}, c.Names())

	var nilCatalog *Catalog
	_, ok = nilCatalog.Lookup("alpha")
	assert.False(t, ok)
}

func TestCatalog_RegisterPanics(t *testing.T) {
	c := New(noopModule{names: []string{"echo"}})
	assert.Panics(t, func() { noopModule{names: []string{"echo"}}.Register(c) }, "duplicate names")
	assert.Panics(t, func() { noopModule{names: []string{"bad.name"}}.Register(c) }, "names outside the unit class")
}

func TestDecode(t *testing.T) {
	var s string
	require.NoError(t, Decode(cty.StringVal("hello"), &s))
	assert.Equal(t, "hello", s)

	var n int64
	require.NoError(t, Decode(cty.NumberIntVal(42), &n))
	assert.Equal(t, int64(42), n)

	require.Error(t, Decode(cty.StringVal("nope"), &n))
	require.Error(t, Decode(cty.NullVal(cty.String), &s))

	type thing struct{ v int }
	var target *thing
	require.NoError(t, Decode(&thing{v: 1}, &target))
	assert.Equal(t, 1, target.v)

	require.Error(t, Decode("text", &target))
	require.Error(t, Decode(nil, &target))
	require.Error(t, Decode("text", s))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "hello", Format(cty.StringVal("hello")))
	assert.Equal(t, "1.5", Format(cty.NumberFloatVal(1.5)))
	assert.Equal(t, "true", Format(cty.True))
	assert.Equal(t, "null", Format(cty.NullVal(cty.String)))
	assert.Equal(t, "[a, 2]", Format([]any{cty.StringVal("a"), cty.NumberIntVal(2)}))
	assert.Equal(t, "plain", Format("plain"))
}
