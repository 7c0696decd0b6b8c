package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterMatchSale(t *testing.T) {
	sale := SaleRecord{
		StoreName:  "Loja A",
		ItemCode:   "CM-101",
		Category:   "Camisas",
		Collection: "Verão",
		SaleDate:   "2024-03-15",
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty filter matches", filter: Filter{}, want: true},
		{name: "store match", filter: Filter{Store: "Loja A"}, want: true},
		{name: "store mismatch", filter: Filter{Store: "Loja B"}, want: false},
		{name: "category match", filter: Filter{Category: "Camisas"}, want: true},
		{name: "collection mismatch", filter: Filter{Collection: "Inverno"}, want: false},
		{name: "month range inclusive", filter: Filter{StartMonth: "2024-03", EndMonth: "2024-03"}, want: true},
		{name: "before range", filter: Filter{StartMonth: "2024-04"}, want: false},
		{name: "after range", filter: Filter{EndMonth: "2024-02"}, want: false},
		{name: "code substring case-insensitive", filter: Filter{CodeQuery: "cm-1"}, want: true},
		{name: "code substring miss", filter: Filter{CodeQuery: "xyz"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.MatchSale(sale))
		})
	}
}

func TestFilterMatchCut(t *testing.T) {
	cut := CutRecord{ItemCode: "CM-101", Color: "Azul", Size: "M"}

	assert.True(t, Filter{}.MatchCut(cut))
	assert.True(t, Filter{CodeQuery: "CM"}.MatchCut(cut))
	assert.False(t, Filter{CodeQuery: "zz"}.MatchCut(cut))
	// Sales-only dimensions do not constrain cuts.
	assert.True(t, Filter{Store: "Loja A"}.MatchCut(cut))
}

func TestGroupFieldOf(t *testing.T) {
	r := SaleRecord{
		StoreName: "Loja A", Category: "Camisas", SubCategory: "Manga Curta",
		ProductName: "Camisa", Color: "Azul", Size: "M", Model: "Basic", Collection: "Verão",
	}

	assert.Equal(t, "Loja A", GroupByStore.Of(r))
	assert.Equal(t, "M", GroupBySize.Of(r))
	assert.Equal(t, "Verão", GroupByCollection.Of(r))
	assert.True(t, GroupBySize.Valid())
	assert.False(t, GroupField("warehouse").Valid())
}

func TestMetricFieldOf(t *testing.T) {
	r := SaleRecord{Quantity: 3, TotalValue: 120}

	assert.Equal(t, 120.0, MetricTotalValue.Of(r))
	assert.Equal(t, 3.0, MetricQuantity.Of(r))
	// Unknown metrics fall back to total value.
	assert.Equal(t, 120.0, MetricField("margin").Of(r))
}

func TestSaleMonth(t *testing.T) {
	assert.Equal(t, "2024-03", SaleRecord{SaleDate: "2024-03-15"}.SaleMonth())
	assert.Equal(t, "", SaleRecord{}.SaleMonth())
}
