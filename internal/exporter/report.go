package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"vendascli/pkg/contracts/domain"
)

// ReportExporter writes aggregation buckets, detail rows and headline
// metrics to CSV or JSON files under a base directory.
type ReportExporter struct {
	baseDir string
	csv     *CSVWriter
	logger  *slog.Logger
}

// NewReportExporter creates a report exporter rooted at baseDir
func NewReportExporter(baseDir string, logger *slog.Logger) *ReportExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportExporter{
		baseDir: baseDir,
		csv:     NewCSVWriter(logger),
		logger:  logger,
	}
}

// ExportBucketsCSV writes aggregation buckets as a CSV file
func (e *ReportExporter) ExportBucketsCSV(name string, buckets []domain.AggregatedBucket) error {
	records := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		records = append(records, []string{
			b.GroupName,
			formatFloat(b.Value),
			formatQuantity(float64(b.ItemCount)),
			formatQuantity(b.StockTotal),
		})
	}
	return e.csv.WriteCSV(filepath.Join(e.baseDir, name), WriteOptions{
		Headers:   []string{"Grupo", "Valor", "Itens", "Estoque"},
		Records:   records,
		BOMPrefix: true,
	})
}

// ExportDetailCSV writes merged detail rows as a CSV file
func (e *ReportExporter) ExportDetailCSV(name string, rows []domain.DetailRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.ItemCode,
			r.ProductName,
			r.Color,
			r.Size,
			formatQuantity(r.CutQuantity),
			formatQuantity(r.SoldQuantity),
			formatFloat(r.Revenue),
			formatFloat(r.SellThroughPercent),
		})
	}
	return e.csv.WriteCSV(filepath.Join(e.baseDir, name), WriteOptions{
		Headers:   []string{"Código", "Produto", "Cor", "Tamanho", "Cortado", "Vendido", "Receita", "Sell-Through %"},
		Records:   records,
		BOMPrefix: true,
	})
}

// ExportMetricsCSV writes headline metrics as a two-column CSV file
func (e *ReportExporter) ExportMetricsCSV(name string, m domain.Metrics) error {
	records := [][]string{
		{"Receita Total", formatFloat(m.TotalRevenue)},
		{"Itens Vendidos", formatQuantity(m.TotalItemsSold)},
		{"Ticket Médio", formatFloat(m.AverageTicket)},
		{"Loja Destaque", m.TopStoreByRevenue},
		{"Estoque Total", formatQuantity(m.TotalStock)},
		{"Total Cortado", formatQuantity(m.TotalCut)},
		{"Sell-Through %", formatFloat(m.SellThroughRate)},
	}
	return e.csv.WriteCSV(filepath.Join(e.baseDir, name), WriteOptions{
		Headers:   []string{"Métrica", "Valor"},
		Records:   records,
		BOMPrefix: true,
	})
}

// ExportJSON writes any report payload as an indented JSON document
func (e *ReportExporter) ExportJSON(name string, payload interface{}) error {
	fullPath := filepath.Join(e.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	e.logger.Info("writing JSON file",
		slog.String("path", fullPath),
		slog.Int("bytes", len(data)))

	return os.WriteFile(fullPath, data, 0644)
}
