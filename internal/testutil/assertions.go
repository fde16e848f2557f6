package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/unitgrid/internal/ledger"
	"github.com/vk/unitgrid/internal/model"
)

// AssertLogged checks that the captured logs contain every fragment.
func AssertLogged(t *testing.T, result *HarnessResult, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		require.True(t,
			strings.Contains(result.LogOutput, fragment),
			"expected log output to contain %q", fragment,
		)
	}
}

// StoredReceipts reopens the persistent ledger of a run and returns what it
// holds.
func StoredReceipts(t *testing.T, result *HarnessResult) []model.Receipt {
	t.Helper()
	require.NotEmpty(t, result.LedgerPath, "the run did not use a persistent ledger")

	ctx := context.Background()
	db, err := ledger.Open(ctx, result.LedgerPath)
	require.NoError(t, err)
	defer db.Close()

	receipts, err := db.List(ctx)
	require.NoError(t, err)
	return receipts
}
