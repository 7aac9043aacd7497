package catalogue

// Product is a snapshot of a catalogue row at lookup time.
//
// Product IDs are fixed-width strings ("0001", "0002", ...) so ordinal string
// comparison gives the right ordering. StockQuantity is the level read when
// the snapshot was taken and may be stale by the time of checkout; the
// inventory store is the authority on stock.
type Product struct {
	ID            string
	Description   string
	ImageRef      string
	UnitPrice     float64
	StockQuantity int
}
