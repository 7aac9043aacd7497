// Package receipt renders trolley contents, receipts and shortfall reports
// as plain strings for whatever presentation layer is attached.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/MaysJava/HappyShop/internal/inventory"
	"github.com/MaysJava/HappyShop/internal/order"
	"github.com/MaysJava/HappyShop/internal/trolley"
)

const EmptyTrolleyMessage = "Your trolley is empty"

// FormatLines renders one row per trolley line plus a total.
func FormatLines(lines []trolley.Line) string {
	var b strings.Builder
	var total float64
	for _, line := range lines {
		fmt.Fprintf(&b, "%s %s (%d) £%.2f\n",
			line.ProductID, line.Description, line.Quantity,
			line.UnitPrice*float64(line.Quantity))
		total += line.UnitPrice * float64(line.Quantity)
	}
	fmt.Fprintf(&b, "Total: £%.2f\n", total)
	return b.String()
}

// FormatOrder renders the receipt for a committed order.
func FormatOrder(o order.Order) string {
	return fmt.Sprintf("Order_ID: %s\nOrdered_Date_Time: %s\n%s",
		o.ID,
		o.OrderedAt.Format(time.DateTime),
		FormatLines(o.Lines))
}

// FormatShortfalls renders the rejection message, one bullet per
// under-stocked product.
func FormatShortfalls(shortfalls []inventory.StockShortfall) string {
	var b strings.Builder
	b.WriteString("Checkout failed due to insufficient stock for the following products:\n")
	for _, sf := range shortfalls {
		fmt.Fprintf(&b, "• %s, %s (Only %d available, %d requested)\n",
			sf.ProductID, sf.Description, sf.Available, sf.Requested)
	}
	return b.String()
}
