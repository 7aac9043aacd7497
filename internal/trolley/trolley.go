package trolley

import (
	"sort"

	"github.com/MaysJava/HappyShop/internal/catalogue"
)

// Line is one consolidated trolley entry. Price and description are frozen
// at the time the product was first added; they are not re-read at checkout.
type Line struct {
	ProductID   string
	Description string
	ImageRef    string
	UnitPrice   float64
	Quantity    int
}

// Trolley holds a customer's in-progress selection. It keeps exactly one Line
// per ProductID. A trolley is owned by a single session and is not safe for
// concurrent use.
type Trolley struct {
	lines []Line
}

func New() *Trolley {
	return &Trolley{}
}

// AddOrMerge adds one unit of the product. If a line with the same ProductID
// already exists its quantity is bumped by one (a corrupted negative quantity
// is floored at zero first); otherwise a new line with quantity 1 is inserted.
// The sort order is invalidated; call SortByID before reading the trolley.
func (t *Trolley) AddOrMerge(p catalogue.Product) {
	for i := range t.lines {
		if t.lines[i].ProductID == p.ID {
			qty := t.lines[i].Quantity
			if qty < 0 {
				qty = 0
			}
			t.lines[i].Quantity = qty + 1
			return
		}
	}

	t.lines = append(t.lines, Line{
		ProductID:   p.ID,
		Description: p.Description,
		ImageRef:    p.ImageRef,
		UnitPrice:   p.UnitPrice,
		Quantity:    1,
	})
}

// SortByID restores the ascending ordinal order by ProductID. Stable and
// idempotent; IDs like "0003" sort correctly lexicographically.
func (t *Trolley) SortByID() {
	sort.SliceStable(t.lines, func(i, j int) bool {
		return t.lines[i].ProductID < t.lines[j].ProductID
	})
}

func (t *Trolley) Clear() {
	t.lines = nil
}

func (t *Trolley) IsEmpty() bool {
	return len(t.lines) == 0
}

// Lines returns a copy of the current lines; mutating the returned slice does
// not affect the trolley.
func (t *Trolley) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}
