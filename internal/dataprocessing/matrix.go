package dataprocessing

import (
	"strconv"
	"time"
)

// CellKind tags the closed set of raw cell variants.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

// Cell is one raw workbook cell. Exactly one of the payload fields is
// meaningful, selected by Kind.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// EmptyCell returns the empty variant.
func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// TextCell wraps a text value.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// NumberCell wraps a numeric value.
func NumberCell(f float64) Cell { return Cell{Kind: CellNumber, Number: f} }

// DateCell wraps a date-typed value.
func DateCell(t time.Time) Cell { return Cell{Kind: CellDate, Date: t} }

// String renders the cell for header matching and text field extraction.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Date.Format("2006-01-02")
	}
	return ""
}

// Row is one ordered row of raw cells.
type Row []Cell

// Cell returns the cell at index i, or the empty variant when the index is
// missing or out of range. Short rows are common in real exports.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r) {
		return EmptyCell()
	}
	return r[i]
}

// RowMatrix is the caller-owned, read-only input of the pipeline.
type RowMatrix []Row
