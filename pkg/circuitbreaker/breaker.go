// Package circuitbreaker guards calls to the inventory store. A run of
// transport failures opens the breaker and later attempts fail fast with
// gobreaker.ErrOpenState until the cool-down passes.
package circuitbreaker

import (
	"context"
	"time"

	"github.com/MaysJava/HappyShop/internal/inventory"
	gobreaker "github.com/sony/gobreaker/v2"
)

// Store decorates an inventory.Store. Only Reserve goes through the breaker;
// shortfalls are business results and never count as failures.
type Store struct {
	next inventory.Store
	cb   *gobreaker.CircuitBreaker[[]inventory.StockShortfall]
}

func NewStore(next inventory.Store) *Store {
	cb := gobreaker.NewCircuitBreaker[[]inventory.StockShortfall](gobreaker.Settings{
		Name:        "inventory-reserve",
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &Store{next: next, cb: cb}
}

func (s *Store) Reserve(ctx context.Context, requests []inventory.StockRequest) ([]inventory.StockShortfall, error) {
	return s.cb.Execute(func() ([]inventory.StockShortfall, error) {
		return s.next.Reserve(ctx, requests)
	})
}

func (s *Store) Stock(ctx context.Context, productID string) (int, error) {
	return s.next.Stock(ctx, productID)
}

func (s *Store) SetStock(ctx context.Context, productID string, quantity int) error {
	return s.next.SetStock(ctx, productID, quantity)
}
