package trolley

import (
	"sort"
	"testing"

	"github.com/MaysJava/HappyShop/internal/catalogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tv() catalogue.Product {
	return catalogue.Product{
		ID:            "0001",
		Description:   "40 inch LED HD TV",
		ImageRef:      "images/0001.jpg",
		UnitPrice:     269.00,
		StockQuantity: 90,
	}
}

func radio() catalogue.Product {
	return catalogue.Product{
		ID:            "0002",
		Description:   "DAB Radio",
		ImageRef:      "images/0002.jpg",
		UnitPrice:     29.99,
		StockQuantity: 20,
	}
}

func TestAddOrMerge_NewLine(t *testing.T) {
	tr := New()
	tr.AddOrMerge(tv())

	lines := tr.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "0001", lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 269.00, lines[0].UnitPrice)
}

func TestAddOrMerge_SameProductMergesIntoOneLine(t *testing.T) {
	tr := New()
	for i := 0; i < 5; i++ {
		tr.AddOrMerge(tv())
	}

	lines := tr.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddOrMerge_PriceFrozenAtAddTime(t *testing.T) {
	tr := New()
	tr.AddOrMerge(tv())

	repriced := tv()
	repriced.UnitPrice = 999.99
	tr.AddOrMerge(repriced)

	lines := tr.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	// The first-added price is the one that sticks.
	assert.Equal(t, 269.00, lines[0].UnitPrice)
}

func TestAddOrMerge_FloorsCorruptedNegativeQuantity(t *testing.T) {
	tr := New()
	tr.AddOrMerge(tv())
	tr.lines[0].Quantity = -3

	tr.AddOrMerge(tv())

	lines := tr.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestSortByID_OrdinalAscending(t *testing.T) {
	tr := New()
	for _, id := range []string{"0010", "0003", "0007", "0001"} {
		p := tv()
		p.ID = id
		tr.AddOrMerge(p)
	}
	tr.SortByID()

	lines := tr.Lines()
	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = line.ProductID
	}
	assert.Equal(t, []string{"0001", "0003", "0007", "0010"}, ids)
	assert.True(t, sort.StringsAreSorted(ids))
}

func TestSortByID_Idempotent(t *testing.T) {
	tr := New()
	tr.AddOrMerge(radio())
	tr.AddOrMerge(tv())

	tr.SortByID()
	once := tr.Lines()
	tr.SortByID()
	twice := tr.Lines()

	assert.Equal(t, once, twice)
}

func TestSortInvariant_AfterAnySequenceOfAdds(t *testing.T) {
	tr := New()
	adds := []string{"0007", "0002", "0007", "0001", "0005", "0002", "0002"}
	for _, id := range adds {
		p := tv()
		p.ID = id
		tr.AddOrMerge(p)
		tr.SortByID()

		lines := tr.Lines()
		for i := 1; i < len(lines); i++ {
			assert.LessOrEqual(t, lines[i-1].ProductID, lines[i].ProductID)
		}
	}

	// One line per distinct id, quantities merged.
	lines := tr.Lines()
	require.Len(t, lines, 4)
	byID := make(map[string]int)
	for _, line := range lines {
		byID[line.ProductID] = line.Quantity
	}
	assert.Equal(t, map[string]int{"0001": 1, "0002": 3, "0005": 1, "0007": 2}, byID)
}

func TestClearAndIsEmpty(t *testing.T) {
	tr := New()
	assert.True(t, tr.IsEmpty())

	tr.AddOrMerge(tv())
	assert.False(t, tr.IsEmpty())

	tr.Clear()
	assert.True(t, tr.IsEmpty())
	assert.Empty(t, tr.Lines())
}

func TestLines_ReturnsCopy(t *testing.T) {
	tr := New()
	tr.AddOrMerge(tv())

	lines := tr.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, tr.Lines()[0].Quantity)
}
