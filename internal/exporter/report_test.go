package exporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendascli/pkg/contracts/domain"
)

func testExporter(t *testing.T) (*ReportExporter, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReportExporter(dir, logger), dir
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Strip the UTF-8 BOM before parsing.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportBucketsCSV(t *testing.T) {
	exp, dir := testExporter(t)

	buckets := []domain.AggregatedBucket{
		{GroupName: "Loja A", Value: 400, ItemCount: 2, StockTotal: 8},
		{GroupName: "Loja B", Value: 50.5, ItemCount: 1, StockTotal: 3},
	}
	require.NoError(t, exp.ExportBucketsCSV("lojas.csv", buckets))

	path := filepath.Join(dir, "lojas.csv")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "expected UTF-8 BOM")

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Grupo", "Valor", "Itens", "Estoque"}, rows[0])
	assert.Equal(t, []string{"Loja A", "400.00", "2", "8"}, rows[1])
	assert.Equal(t, []string{"Loja B", "50.50", "1", "3"}, rows[2])
}

func TestExportDetailCSV(t *testing.T) {
	exp, dir := testExporter(t)

	rows := []domain.DetailRow{
		{
			CompositeKey: "x1|azul|m",
			ItemCode:     "X1", ProductName: "Camisa", Color: "Azul", Size: "M",
			CutQuantity: 10, SoldQuantity: 4, Revenue: 200, SellThroughPercent: 40,
		},
	}
	require.NoError(t, exp.ExportDetailCSV("detalhe.csv", rows))

	got := readCSV(t, filepath.Join(dir, "detalhe.csv"))
	require.Len(t, got, 2)
	assert.Equal(t, []string{"X1", "Camisa", "Azul", "M", "10", "4", "200.00", "40.00"}, got[1])
}

func TestExportMetricsCSV(t *testing.T) {
	exp, dir := testExporter(t)

	m := domain.Metrics{
		TotalRevenue:      450,
		TotalItemsSold:    6,
		AverageTicket:     150,
		TopStoreByRevenue: "Loja A",
		TotalStock:        20,
		TotalCut:          30,
		SellThroughRate:   23.08,
	}
	require.NoError(t, exp.ExportMetricsCSV("resumo.csv", m))

	got := readCSV(t, filepath.Join(dir, "resumo.csv"))
	require.Len(t, got, 8)
	assert.Equal(t, []string{"Receita Total", "450.00"}, got[1])
	assert.Equal(t, []string{"Loja Destaque", "Loja A"}, got[4])
}

func TestExportJSON(t *testing.T) {
	exp, dir := testExporter(t)

	rows := []domain.DetailRow{{CompositeKey: "x1|azul|m", ItemCode: "X1"}}
	require.NoError(t, exp.ExportJSON("detalhe.json", rows))

	data, err := os.ReadFile(filepath.Join(dir, "detalhe.json"))
	require.NoError(t, err)

	var decoded []domain.DetailRow
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "X1", decoded[0].ItemCode)
}

func TestExportCreatesNestedDirectories(t *testing.T) {
	exp, dir := testExporter(t)

	require.NoError(t, exp.ExportJSON(filepath.Join("reports", "2024", "detalhe.json"), []string{}))
	_, err := os.Stat(filepath.Join(dir, "reports", "2024", "detalhe.json"))
	assert.NoError(t, err)
}
