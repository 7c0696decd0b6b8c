package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// IngestMetrics counts ingestion outcomes per dataset kind ("sales", "cuts").
type IngestMetrics struct {
	RowsIngested   *prometheus.CounterVec
	IngestFailures *prometheus.CounterVec
	IngestDuration *prometheus.HistogramVec
}

// NewIngestMetrics registers the ingestion collectors on the given
// registerer; pass prometheus.DefaultRegisterer in production code.
func NewIngestMetrics(reg prometheus.Registerer) *IngestMetrics {
	factory := promauto.With(reg)
	return &IngestMetrics{
		RowsIngested: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vendas_ingest_rows_total",
			Help: "Validated records produced by workbook ingestion.",
		}, []string{"kind"}),
		IngestFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vendas_ingest_failures_total",
			Help: "Workbook ingestions aborted by a structural parse failure.",
		}, []string{"kind"}),
		IngestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vendas_ingest_duration_seconds",
			Help:    "Wall time of one workbook ingestion.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}
}
