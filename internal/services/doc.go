// Package services contains the business logic layer sitting between the
// HTTP transport and the dataprocessing pipeline. AnalyticsService owns the
// loaded datasets and answers report queries; HealthService reports process
// and dataset health for the health endpoints.
package services
