package ledger

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
)

// store is what both ledgers offer.
type store interface {
	model.Ledger
	List(ctx context.Context) ([]model.Receipt, error)
	Balance(ctx context.Context, id urn.URN) (model.Dollars, error)
}

func mustReceipt(t *testing.T, payer, payee string, dollars int64, label string) model.Receipt {
	t.Helper()
	r, err := model.NewReceipt(time.Now(), urn.URN(payer), urn.URN(payee), "top: ran", model.WholeDollars(dollars), label)
	require.NoError(t, err)
	return r
}

func stores(t *testing.T) map[string]store {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return map[string]store{
		"memory": NewMemory(),
		"sqlite": db,
	}
}

func TestLedger_AppendListBalance(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := mustReceipt(t, "bob", "alice", 5, "build")
			second := mustReceipt(t, "alice", "carol", 2, "lint")
			require.NoError(t, s.Append(ctx, first))
			require.NoError(t, s.Append(ctx, second))

			receipts, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, receipts, 2)
			assert.Equal(t, first.ID(), receipts[0].ID())
			assert.Equal(t, urn.URN("bob"), receipts[0].Payer())
			assert.Equal(t, urn.URN("alice"), receipts[0].Payee())
			assert.Equal(t, "top: ran", receipts[0].Details())
			assert.Equal(t, "build", receipts[0].Label())
			assert.Equal(t, int64(5_000_000), receipts[0].Amount().Points())
			assert.True(t, first.Time().Equal(receipts[0].Time()))

			balances := map[urn.URN]int64{"alice": 3, "bob": -5, "carol": 2, "dave": 0}
			for id, dollars := range balances {
				got, err := s.Balance(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, dollars*model.PointsPerDollar, got.Points(), id.String())
			}
		})
	}
}

func TestLedger_ConcurrentAppend(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			receipts := make([]model.Receipt, 10)
			for i := range receipts {
				receipts[i] = mustReceipt(t, "bob", "alice", 1, "build")
			}

			var wg sync.WaitGroup
			for _, r := range receipts {
				wg.Add(1)
				go func(r model.Receipt) {
					defer wg.Done()
					assert.NoError(t, s.Append(ctx, r))
				}(r)
			}
			wg.Wait()

			stored, err := s.List(ctx)
			require.NoError(t, err)
			assert.Len(t, stored, 10)
		})
	}
}

func TestSQLite_ReopenKeepsReceipts(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Append(ctx, mustReceipt(t, "bob", "alice", 5, "build")))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, path, db.Path())

	receipts, err := db.List(ctx)
	require.NoError(t, err)
	assert.Len(t, receipts, 1)
}
