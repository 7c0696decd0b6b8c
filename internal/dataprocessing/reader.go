package dataprocessing

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"vendascli/internal/errors"
)

// ReadWorkbook converts workbook bytes into a RowMatrix. Only the first
// sheet is consumed. An unreadable binary or a workbook without sheets is
// the single fatal ingestion error; everything below that degrades per cell.
//
// Cell typing follows the stored cell type: string-typed cells stay Text so
// the locale-aware numeric decoder sees them verbatim ("1.500" is one
// thousand five hundred, not 1.5), numeric cells become Number (xlsx stores
// typed dates as day-count serials, which the date decoder recognizes on
// the numeric path) and ISO8601 date-typed cells become Date.
func ReadWorkbook(data []byte) (RowMatrix, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewParsingError("failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParsingError("workbook has no sheets", nil)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.NewParsingError("failed to read sheet rows", err)
	}

	matrix := make(RowMatrix, 0, len(rows))
	for i, raw := range rows {
		row := make(Row, len(raw))
		for j, val := range raw {
			row[j] = classifyCell(f, sheet, i, j, val)
		}
		matrix = append(matrix, row)
	}
	return matrix, nil
}

func classifyCell(f *excelize.File, sheet string, rowIdx, colIdx int, raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EmptyCell()
	}

	axis, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return TextCell(raw)
	}
	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return TextCell(raw)
	}

	switch cellType {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		// Plain numeric cells carry no explicit type attribute.
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return NumberCell(n)
		}
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
			return DateCell(t)
		}
	}
	return TextCell(raw)
}
