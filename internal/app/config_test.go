package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(Config{
		RegistryPaths: []string{"units.hcl"},
		Client:        "urn:github:526301",
		Reference:     "alice:build()",
	})

	require.NoError(t, err)
	assert.Equal(t, DefaultOperator, cfg.Operator)
	assert.Equal(t, "main", cfg.Unit)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LedgerPath, "receipts stay in memory by default")
}

func TestNewConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "no reference",
			cfg:  Config{RegistryPaths: []string{"u.hcl"}, Client: "bob"},
			want: "reference",
		},
		{
			name: "no registry",
			cfg:  Config{Client: "bob", Reference: "alice:a()"},
			want: "registry path",
		},
		{
			name: "malformed client",
			cfg:  Config{RegistryPaths: []string{"u.hcl"}, Client: "bob smith", Reference: "alice:a()"},
			want: "invalid client",
		},
		{
			name: "malformed operator",
			cfg:  Config{RegistryPaths: []string{"u.hcl"}, Client: "bob", Operator: "ops::", Reference: "alice:a()"},
			want: "invalid operator",
		},
		{
			name: "malformed balance identifier",
			cfg:  Config{RegistryPaths: []string{"u.hcl"}, Client: "bob", Reference: "alice:a()", Balances: []string{"bob", ""}},
			want: "invalid balance identifier",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
