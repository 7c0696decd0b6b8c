// Package dataprocessing implements the ingestion and aggregation pipeline
// for retail sell-through workbooks.
//
// The pipeline recovers structure from loosely formatted spreadsheet exports:
// it locates the header row by keyword scoring, resolves semantic fields to
// column positions (with positional fallbacks for the known standard layout),
// decodes heterogeneous cells (dual-locale numbers, multi-format dates) and
// assembles validated SaleRecord / CutRecord sequences. On top of those it
// provides the reporting engine: grouping, canonical size ordering, the
// sale/cut merge by composite key and the summary metrics.
//
// The whole package is a pure transformation: workbook bytes in, record
// slices out. Structural workbook failures are the only errors; malformed
// cells degrade to defaults and rows are dropped by the validity filters.
package dataprocessing
