package checkout

import (
	"context"
	"fmt"

	"github.com/MaysJava/HappyShop/internal/inventory"
	"github.com/MaysJava/HappyShop/internal/order"
	"github.com/MaysJava/HappyShop/internal/trolley"
	"go.uber.org/zap"
)

// Result is the terminal outcome of one checkout attempt. Exactly one of
// Order and Shortfalls is populated, matching Status; both are nil for
// EmptyTrolley.
type Result struct {
	Status     Status
	Order      *order.Order
	Shortfalls []inventory.StockShortfall
}

// Service orchestrates the trolley-to-order transition. It holds no state
// between invocations beyond the store and ledger it was constructed with;
// the trolley to check out is passed in per call.
type Service struct {
	store  inventory.Store
	ledger order.Ledger
	log    *zap.Logger
}

func NewService(store inventory.Store, ledger order.Ledger, log *zap.Logger) *Service {
	return &Service{
		store:  store,
		ledger: ledger,
		log:    log,
	}
}

// Checkout consolidates the trolley, reserves stock and on success creates
// an order and clears the trolley. Shortfalls and an empty trolley come back
// as Result data, never as errors; only a failure of the reservation call
// itself returns an error, in which case no order exists and the trolley is
// untouched.
func (s *Service) Checkout(ctx context.Context, t *trolley.Trolley) (*Result, error) {
	status := StatusIdle

	if t.IsEmpty() {
		if err := advance(&status, StatusEmptyTrolley); err != nil {
			return nil, err
		}
		s.log.Info("checkout on empty trolley", zap.Stringer("status", status))
		return &Result{Status: status}, nil
	}

	if err := advance(&status, StatusConsolidating); err != nil {
		return nil, err
	}
	consolidated := trolley.Consolidate(t.Lines())

	if err := advance(&status, StatusReserving); err != nil {
		return nil, err
	}
	shortfalls, err := s.store.Reserve(ctx, toRequests(consolidated))
	if err != nil {
		return nil, fmt.Errorf("failed to reserve stock: %w", err)
	}

	if len(shortfalls) > 0 {
		if err := advance(&status, StatusRejected); err != nil {
			return nil, err
		}
		s.log.Info("checkout rejected",
			zap.Stringer("status", status),
			zap.Int("shortfall_lines", len(shortfalls)))
		return &Result{Status: status, Shortfalls: shortfalls}, nil
	}

	if err := advance(&status, StatusCommitted); err != nil {
		return nil, err
	}
	theOrder := s.ledger.NewOrder(consolidated)
	// The trolley is cleared only after the reservation succeeded.
	t.Clear()

	s.log.Info("checkout committed",
		zap.Stringer("status", status),
		zap.String("order_id", theOrder.ID),
		zap.Int("lines", len(theOrder.Lines)))
	return &Result{Status: status, Order: &theOrder}, nil
}

func advance(status *Status, to Status) error {
	if !CanTransitionTo(*status, to) {
		return IllegalTransitionError
	}
	*status = to
	return nil
}

func toRequests(lines []trolley.Line) []inventory.StockRequest {
	requests := make([]inventory.StockRequest, len(lines))
	for i, line := range lines {
		requests[i] = inventory.StockRequest{
			ProductID:   line.ProductID,
			Description: line.Description,
			Quantity:    line.Quantity,
		}
	}
	return requests
}
