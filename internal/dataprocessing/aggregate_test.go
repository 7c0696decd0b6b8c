package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendascli/pkg/contracts/domain"
)

func sale(store, code, color, size string, qty, value, stock float64) domain.SaleRecord {
	return domain.SaleRecord{
		StoreName:   store,
		ItemCode:    code,
		Color:       color,
		Size:        size,
		Quantity:    qty,
		TotalValue:  value,
		StockOnHand: stock,
		SaleDate:    "2024-03-15",
	}
}

func TestGroupByRevenue(t *testing.T) {
	records := []domain.SaleRecord{
		sale("Loja A", "X1", "Azul", "M", 2, 100, 5),
		sale("Loja B", "X2", "Preto", "G", 1, 300, 2),
		sale("Loja A", "X3", "Azul", "P", 3, 50, 1),
	}

	buckets := GroupBy(records, domain.GroupByStore, domain.MetricTotalValue)
	require.Len(t, buckets, 2)

	// Descending by summed metric.
	assert.Equal(t, "Loja B", buckets[0].GroupName)
	assert.Equal(t, 300.0, buckets[0].Value)
	assert.Equal(t, "Loja A", buckets[1].GroupName)
	assert.Equal(t, 150.0, buckets[1].Value)
	assert.Equal(t, 5.0, buckets[1].ItemCount)
	assert.Equal(t, 6.0, buckets[1].StockTotal)
}

func TestGroupByQuantityMetric(t *testing.T) {
	records := []domain.SaleRecord{
		sale("Loja A", "X1", "Azul", "M", 2, 100, 0),
		sale("Loja B", "X2", "Preto", "G", 7, 10, 0),
	}

	buckets := GroupBy(records, domain.GroupByStore, domain.MetricQuantity)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Loja B", buckets[0].GroupName)
	assert.Equal(t, 7.0, buckets[0].Value)
}

// Buckets partition the input: summed item counts equal the summed input
// quantities regardless of the chosen metric.
func TestGroupByPartitionsQuantity(t *testing.T) {
	records := []domain.SaleRecord{
		sale("Loja A", "X1", "Azul", "M", 2, 100, 5),
		sale("Loja B", "X2", "Preto", "G", 1, 300, 2),
		sale("Loja A", "X1", "Azul", "M", 4, 10, 5),
		sale("Loja C", "X9", "Rosa", "P", 0.5, 1, 0),
	}

	var want float64
	for _, r := range records {
		want += r.Quantity
	}

	for _, metric := range []domain.MetricField{domain.MetricTotalValue, domain.MetricQuantity} {
		var got float64
		for _, b := range GroupBy(records, domain.GroupByStore, metric) {
			got += b.ItemCount
		}
		assert.Equal(t, want, got)
	}
}

func TestGroupByTieKeepsInsertionOrder(t *testing.T) {
	records := []domain.SaleRecord{
		sale("Loja B", "X1", "Azul", "M", 1, 100, 0),
		sale("Loja A", "X2", "Preto", "G", 1, 100, 0),
	}

	buckets := GroupBy(records, domain.GroupByStore, domain.MetricTotalValue)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Loja B", buckets[0].GroupName, "tie broken by first encounter")
}

func TestSortBySize(t *testing.T) {
	names := []string{"56", "XG", "38", "Tamanho Especial", "P", "M", "U", "ÚNICO", "G", "33"}
	buckets := make([]domain.AggregatedBucket, len(names))
	for i, n := range names {
		buckets[i] = domain.AggregatedBucket{GroupName: n}
	}

	sorted := SortBySize(buckets)
	got := make([]string, len(sorted))
	for i, b := range sorted {
		got[i] = b.GroupName
	}

	// Canonical list order first, then plain integers ascending, then the
	// remainder alphabetically.
	assert.Equal(t, []string{"P", "M", "G", "XG", "U", "ÚNICO", "38", "33", "56", "Tamanho Especial"}, got)
}

func TestSortBySizeCaseInsensitive(t *testing.T) {
	buckets := []domain.AggregatedBucket{
		{GroupName: "gg"},
		{GroupName: "pp"},
	}
	sorted := SortBySize(buckets)
	assert.Equal(t, "pp", sorted[0].GroupName)
	assert.Equal(t, "gg", sorted[1].GroupName)
}

func TestGroupByEmptyInput(t *testing.T) {
	assert.Empty(t, GroupBy(nil, domain.GroupByStore, domain.MetricTotalValue))
	assert.Empty(t, SortBySize(nil))
}
