package dataprocessing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"vendascli/pkg/contracts/domain"
)

// CompositeKey derives the sale/cut join identity from an item variant.
// Case folding and trimming apply to the key only; display fields keep the
// source casing.
func CompositeKey(code, color, size string) string {
	fold := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return fold(code) + "|" + fold(color) + "|" + fold(size)
}

// MergeDetail joins filtered sale and cut records into one DetailRow per
// distinct (itemCode, color, size) variant. Sold quantity and revenue
// accumulate from sales, cut quantity from cuts; a variant seen only in cut
// data gets the "Sem Venda" sentinel product name with zero sold/revenue,
// and a sale-only variant a zero cut. The result is key-complete and sorted
// ascending by item code in locale order.
func MergeDetail(sales []domain.SaleRecord, cuts []domain.CutRecord) []domain.DetailRow {
	rows := make([]*domain.DetailRow, 0)
	index := make(map[string]*domain.DetailRow)

	variant := func(key, code, product, color, size string) *domain.DetailRow {
		if row, ok := index[key]; ok {
			return row
		}
		row := &domain.DetailRow{
			CompositeKey: key,
			ItemCode:     code,
			ProductName:  product,
			Color:        color,
			Size:         size,
		}
		index[key] = row
		rows = append(rows, row)
		return row
	}

	for _, s := range sales {
		key := CompositeKey(s.ItemCode, s.Color, s.Size)
		row := variant(key, s.ItemCode, s.ProductName, s.Color, s.Size)
		row.SoldQuantity += s.Quantity
		row.Revenue += s.TotalValue
	}
	for _, c := range cuts {
		key := CompositeKey(c.ItemCode, c.Color, c.Size)
		row := variant(key, c.ItemCode, domain.NoSaleProduct, c.Color, c.Size)
		row.CutQuantity += c.Quantity
	}

	for _, row := range rows {
		if row.CutQuantity > 0 {
			row.SellThroughPercent = row.SoldQuantity / row.CutQuantity * 100
		}
	}

	coll := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(rows, func(i, j int) bool {
		return coll.CompareString(rows[i].ItemCode, rows[j].ItemCode) < 0
	})

	out := make([]domain.DetailRow, len(rows))
	for i, row := range rows {
		out[i] = *row
	}
	return out
}
