package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// SQLStore implements Store over the catalogue database: the products table
// carries the live stock column. All of Reserve runs in one transaction, and
// the store mutex serializes reservation attempts so the read-check-decrement
// sequence is atomic with respect to other callers.
type SQLStore struct {
	mu sync.Mutex
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Reserve(ctx context.Context, requests []StockRequest) ([]StockShortfall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin reservation transaction: %w", err)
	}
	defer tx.Rollback()

	var shortfalls []StockShortfall
	for _, req := range requests {
		var available int
		err := tx.QueryRowContext(ctx,
			`SELECT stock FROM products WHERE product_id = $1`, req.ProductID,
		).Scan(&available)
		if errors.Is(err, sql.ErrNoRows) {
			available = 0
		} else if err != nil {
			return nil, fmt.Errorf("failed to read stock for %s: %w", req.ProductID, err)
		}

		if available < req.Quantity {
			shortfalls = append(shortfalls, StockShortfall{
				ProductID:   req.ProductID,
				Description: req.Description,
				Available:   available,
				Requested:   req.Quantity,
			})
		}
	}

	// Any shortfall fails the whole batch; the rollback leaves every stock
	// row untouched.
	if len(shortfalls) > 0 {
		return shortfalls, nil
	}

	for _, req := range requests {
		_, err := tx.ExecContext(ctx,
			`UPDATE products SET stock = stock - $1 WHERE product_id = $2`,
			req.Quantity, req.ProductID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement stock for %s: %w", req.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}

	return nil, nil
}

func (s *SQLStore) Stock(ctx context.Context, productID string) (int, error) {
	var available int
	err := s.db.QueryRowContext(ctx,
		`SELECT stock FROM products WHERE product_id = $1`, productID,
	).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read stock for %s: %w", productID, err)
	}
	return available, nil
}

func (s *SQLStore) SetStock(ctx context.Context, productID string, quantity int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE products SET stock = $1 WHERE product_id = $2`,
		quantity, productID,
	)
	if err != nil {
		return fmt.Errorf("failed to set stock for %s: %w", productID, err)
	}
	return nil
}
