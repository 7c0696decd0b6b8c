// Package exporter writes report results to CSV and JSON files.
//
// CSVWriter is the core writer, with optional UTF-8 BOM so Excel opens the
// accented Portuguese text correctly. ReportExporter maps the report types
// (aggregation buckets, detail rows, headline metrics) onto CSV columns and
// JSON documents for the batch processor.
package exporter
