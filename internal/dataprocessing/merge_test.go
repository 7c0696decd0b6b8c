package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendascli/pkg/contracts/domain"
)

func TestMergeDetailMatched(t *testing.T) {
	sales := []domain.SaleRecord{
		{ItemCode: "A1", ProductName: "Camisa", Color: "Azul", Size: "M", Quantity: 5, TotalValue: 100, SaleDate: "2024-03-15"},
	}
	cuts := []domain.CutRecord{
		{ItemCode: "A1", Color: "Azul", Size: "M", Quantity: 10},
	}

	rows := MergeDetail(sales, cuts)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "a1|azul|m", row.CompositeKey)
	assert.Equal(t, "Camisa", row.ProductName)
	assert.Equal(t, 5.0, row.SoldQuantity)
	assert.Equal(t, 10.0, row.CutQuantity)
	assert.Equal(t, 100.0, row.Revenue)
	assert.Equal(t, 50.0, row.SellThroughPercent)
}

func TestMergeDetailKeyComplete(t *testing.T) {
	sales := []domain.SaleRecord{
		{ItemCode: "A1", ProductName: "Camisa", Color: "Azul", Size: "M", Quantity: 2, TotalValue: 40, SaleDate: "2024-03-15"},
		{ItemCode: "A1", ProductName: "Camisa", Color: "Azul", Size: "G", Quantity: 1, TotalValue: 20, SaleDate: "2024-03-16"},
	}
	cuts := []domain.CutRecord{
		{ItemCode: "A1", Color: "Azul", Size: "M", Quantity: 4},
		{ItemCode: "B7", Color: "Preto", Size: "U", Quantity: 3},
	}

	rows := MergeDetail(sales, cuts)
	require.Len(t, rows, 3, "every distinct variant appears exactly once")

	byKey := make(map[string]domain.DetailRow, len(rows))
	for _, r := range rows {
		byKey[r.CompositeKey] = r
	}

	assert.Contains(t, byKey, "a1|azul|m")
	assert.Contains(t, byKey, "a1|azul|g")
	assert.Contains(t, byKey, "b7|preto|u")
}

func TestMergeDetailCutOnly(t *testing.T) {
	cuts := []domain.CutRecord{
		{ItemCode: "B7", Color: "Preto", Size: "U", Quantity: 3},
	}

	rows := MergeDetail(nil, cuts)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, domain.NoSaleProduct, row.ProductName)
	assert.Equal(t, 0.0, row.SoldQuantity)
	assert.Equal(t, 0.0, row.Revenue)
	assert.Equal(t, 3.0, row.CutQuantity)
	assert.Equal(t, 0.0, row.SellThroughPercent)
}

func TestMergeDetailSaleOnly(t *testing.T) {
	sales := []domain.SaleRecord{
		{ItemCode: "A1", ProductName: "Camisa", Color: "Azul", Size: "M", Quantity: 2, TotalValue: 40, SaleDate: "2024-03-15"},
	}

	rows := MergeDetail(sales, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].CutQuantity)
	assert.Equal(t, 0.0, rows[0].SellThroughPercent, "no cut means zero sell-through")
}

func TestMergeDetailOverCut(t *testing.T) {
	sales := []domain.SaleRecord{
		{ItemCode: "A1", ProductName: "Camisa", Color: "Azul", Size: "M", Quantity: 15, TotalValue: 300, SaleDate: "2024-03-15"},
	}
	cuts := []domain.CutRecord{
		{ItemCode: "A1", Color: "Azul", Size: "M", Quantity: 10},
	}

	rows := MergeDetail(sales, cuts)
	require.Len(t, rows, 1)
	assert.Equal(t, 150.0, rows[0].SellThroughPercent, "selling more than was cut is valid")
}

func TestMergeDetailKeyFoldingKeepsDisplayCasing(t *testing.T) {
	sales := []domain.SaleRecord{
		{ItemCode: "A1", ProductName: "Camisa", Color: "AZUL", Size: "M", Quantity: 1, TotalValue: 10, SaleDate: "2024-03-15"},
	}
	cuts := []domain.CutRecord{
		{ItemCode: " a1 ", Color: "azul", Size: "m", Quantity: 2},
	}

	rows := MergeDetail(sales, cuts)
	require.Len(t, rows, 1, "casing and whitespace fold into one key")
	assert.Equal(t, "AZUL", rows[0].Color, "display keeps the first-seen casing")
	assert.Equal(t, 2.0, rows[0].CutQuantity)
}

func TestMergeDetailSortedByItemCode(t *testing.T) {
	sales := []domain.SaleRecord{
		{ItemCode: "C3", ProductName: "Saia", Color: "Rosa", Size: "P", Quantity: 1, TotalValue: 10, SaleDate: "2024-03-15"},
		{ItemCode: "A1", ProductName: "Camisa", Color: "Azul", Size: "M", Quantity: 1, TotalValue: 10, SaleDate: "2024-03-15"},
		{ItemCode: "B2", ProductName: "Calça", Color: "Preto", Size: "G", Quantity: 1, TotalValue: 10, SaleDate: "2024-03-15"},
	}

	rows := MergeDetail(sales, nil)
	require.Len(t, rows, 3)
	assert.Equal(t, "A1", rows[0].ItemCode)
	assert.Equal(t, "B2", rows[1].ItemCode)
	assert.Equal(t, "C3", rows[2].ItemCode)
}
