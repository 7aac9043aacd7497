package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/MaysJava/HappyShop/internal/inventory"
	"github.com/MaysJava/HappyShop/internal/order"
	"github.com/MaysJava/HappyShop/internal/trolley"
	"github.com/stretchr/testify/assert"
)

func TestFormatLines(t *testing.T) {
	out := FormatLines([]trolley.Line{
		{ProductID: "0003", Description: "Toaster", UnitPrice: 19.99, Quantity: 2},
		{ProductID: "0006", Description: "MP3 player", UnitPrice: 7.99, Quantity: 1},
	})

	assert.Contains(t, out, "0003 Toaster (2) £39.98")
	assert.Contains(t, out, "0006 MP3 player (1) £7.99")
	assert.Contains(t, out, "Total: £47.97")
}

func TestFormatOrder(t *testing.T) {
	o := order.Order{
		ID:        "0001",
		OrderedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Lines: []trolley.Line{
			{ProductID: "0002", Description: "DAB Radio", UnitPrice: 29.99, Quantity: 1},
		},
	}

	out := FormatOrder(o)

	assert.Contains(t, out, "Order_ID: 0001")
	assert.Contains(t, out, "Ordered_Date_Time: 2026-03-14 10:30:00")
	assert.Contains(t, out, "0002 DAB Radio (1) £29.99")
}

func TestFormatShortfalls(t *testing.T) {
	out := FormatShortfalls([]inventory.StockShortfall{
		{ProductID: "0007", Description: "32Gb USB2 drive", Available: 2, Requested: 4},
	})

	assert.Contains(t, out, "insufficient stock")
	assert.Contains(t, out, "• 0007, 32Gb USB2 drive (Only 2 available, 4 requested)")
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := WriterSink{W: &buf}

	sink.Display("hello")

	assert.Equal(t, "hello\n", buf.String())
}
