package dataprocessing

import (
	"log/slog"
	"sort"
	"strings"

	"vendascli/pkg/contracts/domain"
)

// fieldReader reads one data row through a resolved column map, applying
// the per-type decoding rules. Missing columns and short rows yield the
// type-appropriate default instead of an error.
type fieldReader struct {
	row  Row
	cols map[string]int
}

func (r fieldReader) text(field, def string) string {
	c := r.row.Cell(r.cols[field])
	s := strings.TrimSpace(c.String())
	if s == "" {
		return def
	}
	return s
}

func (r fieldReader) number(field string) float64 {
	return CleanNumber(r.row.Cell(r.cols[field]))
}

func (r fieldReader) date(field string) string {
	return DecodeDate(r.row.Cell(r.cols[field]))
}

// dataRows applies one layout to a matrix: locate the header inside the
// search window, resolve columns against it and return a reader per data
// row. Sales and cuts share this path; only the layout and the record shape
// differ.
func dataRows(m RowMatrix, layout Layout, window int) []fieldReader {
	headerIdx := LocateHeader(m, layout.HeaderKeywords, window)

	var header Row
	if headerIdx >= 0 {
		header = m[headerIdx]
	}
	cols := ResolveColumns(header, layout.Columns)

	slog.Debug("workbook layout resolved",
		slog.String("kind", layout.Kind),
		slog.Int("header_row", headerIdx),
		slog.Int("total_rows", len(m)))

	readers := make([]fieldReader, 0, len(m))
	for i, row := range m {
		if i <= headerIdx {
			continue
		}
		readers = append(readers, fieldReader{row: row, cols: cols})
	}
	return readers
}

// AssembleSales walks the matrix and produces the canonical sale records,
// sorted ascending by sale date. Rows without a decodable date, or with
// neither revenue nor quantity, are dropped.
func AssembleSales(m RowMatrix, window int) []domain.SaleRecord {
	readers := dataRows(m, salesLayout, window)

	records := make([]domain.SaleRecord, 0, len(readers))
	for _, r := range readers {
		rec := domain.SaleRecord{
			SaleDate:    r.date("date"),
			StoreName:   r.text("store", domain.DefaultStore),
			ItemCode:    r.text("code", ""),
			Category:    r.text("category", domain.DefaultCategory),
			SubCategory: r.text("subcategory", domain.DefaultCategory),
			ProductName: r.text("product", domain.DefaultProduct),
			Color:       r.text("color", domain.DefaultColor),
			Size:        r.text("size", domain.DefaultSize),
			Model:       r.text("model", domain.DefaultModel),
			Collection:  r.text("collection", domain.DefaultCollection),
			Quantity:    clampNonNegative(r.number("quantity")),
			TotalValue:  r.number("value"),
			StockOnHand: clampNonNegative(r.number("stock")),
		}
		if rec.SaleDate == "" {
			continue
		}
		if rec.TotalValue <= 0 && rec.Quantity <= 0 {
			continue
		}
		records = append(records, rec)
	}

	// Zero-padded ISO dates sort chronologically as strings.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SaleDate < records[j].SaleDate
	})

	slog.Info("sales rows assembled",
		slog.Int("data_rows", len(readers)),
		slog.Int("records", len(records)))

	return records
}

// AssembleCuts walks the matrix and produces the canonical cut records in
// source row order. Rows without an item code or a positive quantity are
// dropped.
func AssembleCuts(m RowMatrix, window int) []domain.CutRecord {
	readers := dataRows(m, cutLayout, window)

	records := make([]domain.CutRecord, 0, len(readers))
	for _, r := range readers {
		rec := domain.CutRecord{
			ItemCode: r.text("code", ""),
			Color:    r.text("color", domain.DefaultColor),
			Size:     r.text("size", domain.DefaultSize),
			Quantity: clampNonNegative(r.number("quantity")),
		}
		if rec.ItemCode == "" || rec.Quantity <= 0 {
			continue
		}
		records = append(records, rec)
	}

	slog.Info("cut rows assembled",
		slog.Int("data_rows", len(readers)),
		slog.Int("records", len(records)))

	return records
}

// IngestSales parses a sales workbook into validated sale records. A
// structurally broken workbook is the only error; an empty-but-valid
// workbook yields an empty slice.
func IngestSales(data []byte) ([]domain.SaleRecord, error) {
	m, err := ReadWorkbook(data)
	if err != nil {
		return nil, err
	}
	return AssembleSales(m, DefaultHeaderWindow), nil
}

// IngestCuts parses a cut workbook into validated cut records.
func IngestCuts(data []byte) ([]domain.CutRecord, error) {
	m, err := ReadWorkbook(data)
	if err != nil {
		return nil, err
	}
	return AssembleCuts(m, DefaultHeaderWindow), nil
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
