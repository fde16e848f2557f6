package ledger

import (
	"context"
	"sync"

	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
)

// Memory keeps receipts in process memory.
type Memory struct {
	mu       sync.Mutex
	receipts []model.Receipt
}

// NewMemory creates an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{}
}

// Append implements model.Ledger.
func (m *Memory) Append(ctx context.Context, receipt model.Receipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts = append(m.receipts, receipt)
	return nil
}

// List returns a snapshot of all receipts in the order they were written.
func (m *Memory) List(ctx context.Context) ([]model.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Receipt(nil), m.receipts...), nil
}

// Balance returns what id received minus what it paid.
func (m *Memory) Balance(ctx context.Context, id urn.URN) (model.Dollars, error) {
	receipts, _ := m.List(ctx)
	return balance(receipts, id), nil
}

func balance(receipts []model.Receipt, id urn.URN) model.Dollars {
	var points int64
	for _, r := range receipts {
		if r.Payee() == id {
			points += r.Amount().Points()
		}
		if r.Payer() == id {
			points -= r.Amount().Points()
		}
	}
	return model.NewDollars(points)
}
