package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/testutil"
	"github.com/vk/unitgrid/internal/urn"
)

const tenantsHCL = `
user "alice" {
  unit "build" {
    spec = "fee(5,\"ran\",echo(1))"
  }
  unit "greet" {
    spec = "echo(\"hello\",$${1:who})"
  }
  unit "ci" {
    spec = "build()"
  }
  unit "plain" {
    spec = "text(\"a\",\"b\")"
  }
}

user "bob" {}

user "carol" {
  unit "deploy" {
    spec = "fee(\"$1\",\"ship\",alice:build())"
  }
}
`

// TestForeignReference_BillsClient covers the basic cross-tenant call: bob
// uses alice's unit and pays her for what it charges.
func TestForeignReference_BillsClient(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:      map[string]string{"tenants.hcl": tenantsHCL},
		Client:     "bob",
		Reference:  "alice:build()",
		Persistent: true,
	})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "`build` 1")
	assert.Contains(t, result.Output, "$5.00")

	receipts := testutil.StoredReceipts(t, result)
	require.Len(t, receipts, 1)
	r := receipts[0]
	assert.Equal(t, urn.URN("bob"), r.Payer())
	assert.Equal(t, urn.URN("alice"), r.Payee())
	assert.Equal(t, int64(5_000_000), r.Amount().Points())
	assert.Equal(t, "build", r.Label())
	assert.Equal(t, "main: ran", r.Details())

	testutil.AssertLogged(t, result, "Intercepting charges across tenants.", "Tagged object with reference name.")
}

func TestForeignReference_UnitNotFound(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:     map[string]string{"tenants.hcl": tenantsHCL},
		Client:    "bob",
		Reference: "alice:missing()",
	})
	require.Error(t, result.Err)
	assert.True(t, model.IsKind(result.Err, model.KindUnitNotFound))
	assert.Contains(t, result.Err.Error(), "missing")
	assert.Contains(t, result.Err.Error(), "alice")
	assert.NotContains(t, result.Output, "$")
}

func TestForeignReference_OwnUnitUsesOperatorBilling(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:      map[string]string{"tenants.hcl": tenantsHCL},
		Client:     "alice",
		Reference:  "alice:build()",
		Persistent: true,
	})
	require.NoError(t, result.Err)

	receipts := testutil.StoredReceipts(t, result)
	require.Len(t, receipts, 1)
	assert.Equal(t, urn.URN("alice"), receipts[0].Payer())
	assert.Equal(t, urn.URN("urn:unitgrid:operator"), receipts[0].Payee())
	assert.Equal(t, "main", receipts[0].Label())
	assert.Equal(t, "ran", receipts[0].Details())
}

// TestForeignReference_NestedBillingTelescopes checks that every hop is
// billed relative to its own client and owner.
func TestForeignReference_NestedBillingTelescopes(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:      map[string]string{"tenants.hcl": tenantsHCL},
		Client:     "bob",
		Reference:  "carol:deploy()",
		Persistent: true,
	})
	require.NoError(t, result.Err)

	receipts := testutil.StoredReceipts(t, result)
	require.Len(t, receipts, 2)

	inner, outer := receipts[0], receipts[1]
	assert.Equal(t, []urn.URN{"carol", "alice"}, []urn.URN{inner.Payer(), inner.Payee()})
	assert.Equal(t, "build", inner.Label())
	assert.Equal(t, int64(5_000_000), inner.Amount().Points())

	assert.Equal(t, []urn.URN{"bob", "carol"}, []urn.URN{outer.Payer(), outer.Payee()})
	assert.Equal(t, "deploy", outer.Label())
	assert.Equal(t, "main: ship", outer.Details())
	assert.Equal(t, int64(1_000_000), outer.Amount().Points())

	assert.Contains(t, result.Output, "$6.00", "the table totals the run")
}

func TestForeignReference_LocalReferenceInsideForeignUnit(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:      map[string]string{"tenants.hcl": tenantsHCL},
		Client:     "bob",
		Reference:  "alice:ci()",
		Persistent: true,
	})
	require.NoError(t, result.Err)

	receipts := testutil.StoredReceipts(t, result)
	require.Len(t, receipts, 1)
	assert.Equal(t, urn.URN("bob"), receipts[0].Payer())
	assert.Equal(t, urn.URN("alice"), receipts[0].Payee())
	assert.Equal(t, "ci", receipts[0].Label(), "the local hop does not re-attribute the charge")

	// build() tags first, then ci overrides the tag on the same object.
	assert.Contains(t, result.Output, "`ci` 1")
}

func TestForeignReference_PositionalArguments(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:     map[string]string{"tenants.hcl": tenantsHCL},
		Client:    "bob",
		Reference: "alice:greet(${1:name})",
		Args:      []string{"world"},
	})
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "`greet` hello world")
	assert.NotContains(t, result.Output, "Total", "nothing was charged")
}

func TestForeignReference_MissingArgument(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:     map[string]string{"tenants.hcl": tenantsHCL},
		Client:    "bob",
		Reference: "alice:greet(${1:name})",
	})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "argument #1 'name'")
}

func TestForeignReference_PlainResultIsNotTagged(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:     map[string]string{"tenants.hcl": tenantsHCL},
		Client:    "bob",
		Reference: "alice:plain()",
	})
	require.NoError(t, result.Err)
	assert.Equal(t, "a b\n", result.Output)
}

func TestRegistry_InvalidSpecFailsStartup(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files: map[string]string{
			"tenants.hcl": tenantsHCL,
			"broken.hcl": `user "dave" {
  unit "oops" { spec = "echo(" }
}`,
		},
		Client:    "bob",
		Reference: "alice:build()",
	})
	require.Error(t, result.Err)
	assert.Nil(t, result.App)
	assert.Contains(t, result.Err.Error(), "unit 'oops' of 'dave'")
}

const cyclicHCL = `
user "alice" {
  unit "loop" {
    spec = "loop()"
  }
  unit "a" {
    spec = "echo(bob:b())"
  }
  unit "twice" {
    spec = "text(alice:plain(),alice:plain())"
  }
  unit "plain" {
    spec = "text(\"p\")"
  }
}

user "bob" {
  unit "b" {
    spec = "alice:a()"
  }
}
`

func TestForeignReference_CyclesFailInsteadOfRecursing(t *testing.T) {
	testCases := []struct {
		name      string
		reference string
		path      string
	}{
		{name: "local self reference", reference: "alice:loop()", path: "alice:loop -> alice:loop"},
		{name: "cycle across tenants", reference: "alice:a()", path: "alice:a -> bob:b -> alice:a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunIntegrationTest(t, testutil.Harness{
				Files:     map[string]string{"tenants.hcl": cyclicHCL},
				Client:    "bob",
				Reference: tc.reference,
			})
			require.Error(t, result.Err)
			assert.True(t, model.IsKind(result.Err, model.KindInstantiation))
			assert.Contains(t, result.Err.Error(), "cyclic reference: "+tc.path)
		})
	}
}

func TestForeignReference_RepeatedSiblingsAreNotCycles(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:     map[string]string{"tenants.hcl": cyclicHCL},
		Client:    "bob",
		Reference: "alice:twice()",
	})
	require.NoError(t, result.Err)
	assert.Equal(t, "p p\n", result.Output)
}

func TestForeignReference_UnknownOwner(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:     map[string]string{"tenants.hcl": tenantsHCL},
		Client:    "bob",
		Reference: "nobody:build()",
	})
	require.Error(t, result.Err)
	assert.True(t, model.IsKind(result.Err, model.KindUnitNotFound))
	assert.Contains(t, result.Err.Error(), "unit 'build' not found in 'nobody'")
}

func TestForeignReference_ReportsBalances(t *testing.T) {
	result := testutil.RunIntegrationTest(t, testutil.Harness{
		Files:      map[string]string{"tenants.hcl": tenantsHCL},
		Client:     "bob",
		Reference:  "carol:deploy()",
		Balances:   []string{"bob", "carol", "alice"},
		Persistent: true,
	})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "balance bob: -$1.00\n")
	assert.Contains(t, result.Output, "balance carol: -$4.00\n")
	assert.Contains(t, result.Output, "balance alice: $5.00\n")
}
