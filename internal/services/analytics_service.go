package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"vendascli/internal/dataprocessing"
	apperrors "vendascli/internal/errors"
	"vendascli/internal/infrastructure"
	"vendascli/pkg/contracts/domain"
)

// AnalyticsService owns the loaded datasets and answers report queries.
// Datasets are replaced wholesale on each load; queries see a consistent
// snapshot guarded by the read lock.
type AnalyticsService struct {
	mu       sync.RWMutex
	sales    []domain.SaleRecord
	cuts     []domain.CutRecord
	datasets []domain.DatasetInfo

	window  int
	metrics *infrastructure.IngestMetrics
	logger  *slog.Logger
}

// NewAnalyticsService creates an analytics service. The header search
// window comes from the ingest configuration; metrics may be nil in tests.
func NewAnalyticsService(window int, metrics *infrastructure.IngestMetrics, logger *slog.Logger) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	if window <= 0 {
		window = dataprocessing.DefaultHeaderWindow
	}
	return &AnalyticsService{
		window:  window,
		metrics: metrics,
		logger:  logger,
	}
}

// LoadSales parses a sales workbook and replaces the current sales dataset.
func (s *AnalyticsService) LoadSales(ctx context.Context, fileName string, data []byte) (domain.DatasetInfo, error) {
	start := time.Now()

	matrix, err := dataprocessing.ReadWorkbook(data)
	if err != nil {
		s.observeFailure("sales")
		return domain.DatasetInfo{}, err
	}
	records := dataprocessing.AssembleSales(matrix, s.window)

	info := domain.DatasetInfo{
		ID:          uuid.New().String(),
		Kind:        domain.DatasetSales,
		FileName:    fileName,
		RecordCount: len(records),
		LoadedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.sales = records
	s.replaceDataset(info)
	s.mu.Unlock()

	s.observeSuccess("sales", len(records), start)
	s.logger.InfoContext(ctx, "sales dataset loaded",
		slog.String("dataset_id", info.ID),
		slog.String("file", fileName),
		slog.Int("records", len(records)),
		slog.Duration("elapsed", time.Since(start)))

	return info, nil
}

// LoadCuts parses a cut/production workbook and replaces the current cuts dataset.
func (s *AnalyticsService) LoadCuts(ctx context.Context, fileName string, data []byte) (domain.DatasetInfo, error) {
	start := time.Now()

	matrix, err := dataprocessing.ReadWorkbook(data)
	if err != nil {
		s.observeFailure("cuts")
		return domain.DatasetInfo{}, err
	}
	records := dataprocessing.AssembleCuts(matrix, s.window)

	info := domain.DatasetInfo{
		ID:          uuid.New().String(),
		Kind:        domain.DatasetCuts,
		FileName:    fileName,
		RecordCount: len(records),
		LoadedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.cuts = records
	s.replaceDataset(info)
	s.mu.Unlock()

	s.observeSuccess("cuts", len(records), start)
	s.logger.InfoContext(ctx, "cuts dataset loaded",
		slog.String("dataset_id", info.ID),
		slog.String("file", fileName),
		slog.Int("records", len(records)),
		slog.Duration("elapsed", time.Since(start)))

	return info, nil
}

// Datasets lists the currently loaded datasets, newest first.
func (s *AnalyticsService) Datasets(ctx context.Context) []domain.DatasetInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.DatasetInfo, len(s.datasets))
	copy(out, s.datasets)
	return out
}

// Summary computes headline metrics over the filtered sales and cuts.
func (s *AnalyticsService) Summary(ctx context.Context, filter domain.Filter) (domain.Metrics, error) {
	sales, cuts := s.snapshot(filter)
	return dataprocessing.ComputeMetrics(sales, cuts), nil
}

// Groups aggregates filtered sales into buckets by the given field. Size
// groupings come back in canonical size order instead of metric order.
func (s *AnalyticsService) Groups(ctx context.Context, field domain.GroupField, metric domain.MetricField, filter domain.Filter) ([]domain.AggregatedBucket, error) {
	if !field.Valid() {
		return nil, apperrors.NewValidationError("unknown grouping field: " + string(field))
	}

	sales, _ := s.snapshot(filter)
	buckets := dataprocessing.GroupBy(sales, field, metric)
	if field == domain.GroupBySize {
		buckets = dataprocessing.SortBySize(buckets)
	}
	return buckets, nil
}

// Detail merges filtered sales and cuts into per-variant rows with
// sell-through percentages.
func (s *AnalyticsService) Detail(ctx context.Context, filter domain.Filter) ([]domain.DetailRow, error) {
	sales, cuts := s.snapshot(filter)
	return dataprocessing.MergeDetail(sales, cuts), nil
}

// snapshot copies the filtered records out from under the read lock so the
// pipeline functions never see concurrent mutation.
func (s *AnalyticsService) snapshot(filter domain.Filter) ([]domain.SaleRecord, []domain.CutRecord) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]domain.SaleRecord, 0, len(s.sales))
	for _, r := range s.sales {
		if filter.MatchSale(r) {
			sales = append(sales, r)
		}
	}
	cuts := make([]domain.CutRecord, 0, len(s.cuts))
	for _, c := range s.cuts {
		if filter.MatchCut(c) {
			cuts = append(cuts, c)
		}
	}
	return sales, cuts
}

// replaceDataset records info for its kind, dropping any previous dataset of
// the same kind. Caller must hold the write lock.
func (s *AnalyticsService) replaceDataset(info domain.DatasetInfo) {
	kept := s.datasets[:0]
	for _, d := range s.datasets {
		if d.Kind != info.Kind {
			kept = append(kept, d)
		}
	}
	s.datasets = append(kept, info)
}

func (s *AnalyticsService) observeSuccess(kind string, rows int, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RowsIngested.WithLabelValues(kind).Add(float64(rows))
	s.metrics.IngestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func (s *AnalyticsService) observeFailure(kind string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IngestFailures.WithLabelValues(kind).Inc()
}
