// Package http wires the chi routes for dataset uploads, report queries,
// health probes and Prometheus metrics. Handlers translate transport
// concerns (multipart uploads, query strings) into service calls and render
// results as JSON, with failures reported as RFC 7807 problem documents.
package http
