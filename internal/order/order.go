package order

import (
	"time"

	"github.com/MaysJava/HappyShop/internal/trolley"
)

// Order is the immutable record produced once a reservation succeeds. Lines
// is a private snapshot of the consolidated trolley taken at creation time;
// later trolley mutations never reach it.
type Order struct {
	ID        string
	OrderedAt time.Time
	Lines     []trolley.Line
}

// Total sums unit price times quantity across all lines.
func (o Order) Total() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}
