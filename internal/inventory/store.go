package inventory

import "context"

// StockRequest asks the store to reserve Quantity units of one product.
// Description rides along so a shortfall can be reported without another
// catalogue round trip.
type StockRequest struct {
	ProductID   string
	Description string
	Quantity    int
}

// StockShortfall describes one under-stocked line of a failed reservation.
// Requested > Available always holds; a product unknown to the store reports
// Available = 0.
type StockShortfall struct {
	ProductID   string
	Description string
	Available   int
	Requested   int
}

// Store is the shared inventory contract consumed by checkout.
//
// Reserve is all-or-nothing: either every requested quantity is decremented,
// or none are and the under-stocked lines come back as shortfalls (empty
// slice means full success). Shortfalls are business data, not errors; a
// non-nil error means the attempt itself failed and no stock was touched.
// Repeated calls are not idempotent — each call decrements against live
// stock.
type Store interface {
	Reserve(ctx context.Context, requests []StockRequest) ([]StockShortfall, error)

	// Stock returns the current available quantity for a product, zero if
	// the product is unknown.
	Stock(ctx context.Context, productID string) (int, error)

	// SetStock sets the stock level for a product (used for initialization)
	SetStock(ctx context.Context, productID string, quantity int) error
}
