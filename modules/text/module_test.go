package text

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/unitgrid/internal/model"
	"github.com/zclconf/go-cty/cty"
)

func TestTextAndConcat(t *testing.T) {
	args := []any{cty.StringVal("git"), cty.NumberIntVal(2), []any{cty.True}}

	value, err := NewText(context.Background(), nil, args)
	require.NoError(t, err)
	assert.Equal(t, "git 2 [true]", value)
	_, nameable := value.(model.Nameable)
	assert.False(t, nameable)

	value, err = NewConcat(context.Background(), nil, args)
	require.NoError(t, err)
	assert.Equal(t, "git2[true]", value)
}
