package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ReservedBatch records one committed reservation for auditing.
type ReservedBatch struct {
	ID         string
	Items      []StockRequest
	ReservedAt time.Time
}

// MemoryStore implements Store with in-memory storage. The single mutex
// serializes the check-then-decrement sequence, so two checkouts racing for
// the last unit cannot both succeed.
type MemoryStore struct {
	mu      sync.Mutex
	stocks  map[string]int
	batches []ReservedBatch
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		stocks: make(map[string]int),
	}
}

// Reserve validates every request against current stock first; if any line
// is short, nothing is decremented and all shortfalls are returned. Only a
// fully satisfiable batch mutates stock.
func (s *MemoryStore) Reserve(_ context.Context, requests []StockRequest) ([]StockShortfall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// First pass: validate all items have sufficient stock
	var shortfalls []StockShortfall
	for _, req := range requests {
		available := s.stocks[req.ProductID]
		if available < req.Quantity {
			shortfalls = append(shortfalls, StockShortfall{
				ProductID:   req.ProductID,
				Description: req.Description,
				Available:   available,
				Requested:   req.Quantity,
			})
		}
	}
	if len(shortfalls) > 0 {
		return shortfalls, nil
	}

	// Second pass: decrement stock for all items
	for _, req := range requests {
		s.stocks[req.ProductID] -= req.Quantity
	}

	s.batches = append(s.batches, ReservedBatch{
		ID:         uuid.New().String(),
		Items:      append([]StockRequest(nil), requests...),
		ReservedAt: time.Now(),
	})

	return nil, nil
}

func (s *MemoryStore) Stock(_ context.Context, productID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stocks[productID], nil
}

func (s *MemoryStore) SetStock(_ context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stocks[productID] = quantity
	return nil
}

// Batches returns a copy of the committed reservation journal.
func (s *MemoryStore) Batches() []ReservedBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ReservedBatch, len(s.batches))
	copy(out, s.batches)
	return out
}
