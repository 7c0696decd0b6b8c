package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "vendascli/internal/errors"
	"vendascli/internal/services"
	"vendascli/pkg/contracts/domain"
)

// AnalyticsHandler handles dataset uploads and report queries
type AnalyticsHandler struct {
	service        *services.AnalyticsService
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
	validate       *validator.Validate
	maxUploadBytes int64
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *services.AnalyticsService, maxUploadBytes int64, logger *slog.Logger) *AnalyticsHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 32 << 20
	}
	return &AnalyticsHandler{
		service:        service,
		logger:         logger,
		errorHandler:   apierrors.NewErrorHandler(logger, false),
		validate:       validator.New(),
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes registers the dataset and report routes
func (h *AnalyticsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/datasets", func(r chi.Router) {
		r.Get("/", h.ListDatasets)
		r.Post("/sales", h.UploadSales)
		r.Post("/cuts", h.UploadCuts)
	})
	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", h.GetSummary)
		r.Get("/groups", h.GetGroups)
		r.Get("/detail", h.GetDetail)
	})
}

// ListDatasets returns the currently loaded datasets
func (h *AnalyticsHandler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	datasets := h.service.Datasets(r.Context())
	render.JSON(w, r, map[string]interface{}{"datasets": datasets})
}

// UploadSales ingests a sales workbook and replaces the sales dataset
func (h *AnalyticsHandler) UploadSales(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.service.LoadSales)
}

// UploadCuts ingests a cut/production workbook and replaces the cuts dataset
func (h *AnalyticsHandler) UploadCuts(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.service.LoadCuts)
}

func (h *AnalyticsHandler) upload(w http.ResponseWriter, r *http.Request, load func(context.Context, string, []byte) (domain.DatasetInfo, error)) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.logger.WarnContext(ctx, "multipart parse failed",
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, apierrors.New(
			http.StatusBadRequest,
			"INVALID_UPLOAD",
			"Request must be multipart/form-data with a 'file' field",
		))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "missing uploaded file"))
		return
	}
	defer file.Close()

	name := header.Filename
	if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "only .xlsx workbooks are accepted"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.New(
			http.StatusBadRequest,
			"INVALID_UPLOAD",
			"Failed to read uploaded file",
		))
		return
	}

	info, err := load(ctx, name, data)
	if err != nil {
		h.logger.ErrorContext(ctx, "workbook ingestion failed",
			slog.String("file", name),
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, info)
}

// GetSummary returns headline metrics for the filtered sales
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := h.parseFilter(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	metrics, err := h.service.Summary(ctx, filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, metrics)
}

// GetGroups returns aggregated buckets grouped by the requested field
func (h *AnalyticsHandler) GetGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	field := domain.GroupField(r.URL.Query().Get("by"))
	if field == "" {
		field = domain.GroupByStore
	}
	if !field.Valid() {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("by",
			"unknown grouping field; use store, category, subcategory, product, color, size, model or collection"))
		return
	}

	metric := domain.MetricField(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = domain.MetricTotalValue
	}
	if !metric.Valid() {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("metric",
			"unknown metric; use total_value or quantity"))
		return
	}

	filter, err := h.parseFilter(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	buckets, err := h.service.Groups(ctx, field, metric, filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"by":      field,
		"metric":  metric,
		"buckets": buckets,
	})
}

// GetDetail returns merged per-variant rows with sell-through percentages
func (h *AnalyticsHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := h.parseFilter(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	rows, err := h.service.Detail(ctx, filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{"rows": rows})
}

// parseFilter builds a domain filter from the query string and validates it
func (h *AnalyticsHandler) parseFilter(r *http.Request) (domain.Filter, error) {
	q := r.URL.Query()
	filter := domain.Filter{
		Store:      q.Get("store"),
		Category:   q.Get("category"),
		Collection: q.Get("collection"),
		StartMonth: q.Get("start_month"),
		EndMonth:   q.Get("end_month"),
		CodeQuery:  q.Get("code"),
	}

	if err := h.validate.Struct(filter); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field := strings.ToLower(errs[0].Field())
			return domain.Filter{}, apierrors.ErrValidation(field, "expected YYYY-MM")
		}
		return domain.Filter{}, apierrors.ErrValidation("filter", err.Error())
	}

	return filter, nil
}
