package order

import (
	"fmt"
	"sync"
	"time"

	"github.com/MaysJava/HappyShop/internal/trolley"
)

// Ledger is the sole creator of orders and the only source of order ids.
type Ledger interface {
	NewOrder(lines []trolley.Line) Order
}

// MemoryLedger assigns zero-padded sequential ids ("0001", "0002", ...) from
// a mutex-protected counter. It is shared process-wide; concurrent NewOrder
// calls from different sessions never collide.
type MemoryLedger struct {
	mu     sync.Mutex
	next   int
	orders []Order
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// NewOrder assigns the next order id, stamps the current time and snapshots
// the given lines. The copy keeps the returned Order immune to any further
// mutation of the caller's slice.
func (l *MemoryLedger) NewOrder(lines []trolley.Line) Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	o := Order{
		ID:        fmt.Sprintf("%04d", l.next),
		OrderedAt: time.Now(),
		Lines:     append([]trolley.Line(nil), lines...),
	}
	l.orders = append(l.orders, o)
	return o
}

// Orders returns a copy of every order created so far, oldest first.
func (l *MemoryLedger) Orders() []Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Order, len(l.orders))
	copy(out, l.orders)
	return out
}
