package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"vendascli/pkg/contracts/domain"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	buildTime string
	analytics *AnalyticsService
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}

// NewHealthService creates a new health service with injected dependencies
func NewHealthService(version, buildTime string, analytics *AnalyticsService, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("HealthService initialized",
		slog.String("version", version),
		slog.String("build_time", buildTime))

	return &HealthService{
		version:   version,
		buildTime: buildTime,
		analytics: analytics,
		startTime: time.Now(),
		logger:    logger,
	}
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	hs.logger.Debug("HealthCheck: performing health check",
		slog.String("version", hs.version),
		slog.String("uptime", time.Since(hs.startTime).String()))

	return HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   hs.version,
	}
}

// ReadinessCheck returns readiness status. The service is ready as soon as
// it can answer queries; dataset presence is reported per kind so operators
// can tell an empty instance from a loaded one.
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   hs.version,
		Services:  make(map[string]interface{}),
	}

	status.Services["analytics"] = hs.checkAnalyticsHealth()
	status.Services["datasets"] = hs.datasetSummary(ctx)

	if sh, ok := status.Services["analytics"].(ServiceHealth); ok && sh.Status != "ready" {
		status.Status = "not_ready"
	}

	return status
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// Version returns version information
func (hs *HealthService) Version() map[string]interface{} {
	result := map[string]interface{}{
		"version":      hs.version,
		"go_version":   runtime.Version(),
		"os":           runtime.GOOS,
		"arch":         runtime.GOARCH,
		"uptime":       time.Since(hs.startTime).Seconds(),
		"start_time":   hs.startTime.Format(time.RFC3339),
		"current_time": time.Now().Format(time.RFC3339),
	}

	if hs.buildTime != "" {
		result["build_time"] = hs.buildTime
	}

	return result
}

func (hs *HealthService) checkAnalyticsHealth() ServiceHealth {
	if hs.analytics == nil {
		return ServiceHealth{
			Status:  "not_ready",
			Message: "analytics service not initialized",
		}
	}
	return ServiceHealth{
		Status: "ready",
		Uptime: time.Since(hs.startTime).String(),
	}
}

func (hs *HealthService) datasetSummary(ctx context.Context) map[string]interface{} {
	summary := map[string]interface{}{
		domain.DatasetSales: false,
		domain.DatasetCuts:  false,
	}
	if hs.analytics == nil {
		return summary
	}
	for _, d := range hs.analytics.Datasets(ctx) {
		summary[d.Kind] = map[string]interface{}{
			"file_name":    d.FileName,
			"record_count": d.RecordCount,
			"loaded_at":    d.LoadedAt,
		}
	}
	return summary
}
