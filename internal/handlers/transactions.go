package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/dto"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/errs"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/pagination"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/response"
)

type DashboardService interface {
	ListTransactions(ctx context.Context, page, size int, filters dto.FilterParams) dto.PaginatedTransactions
	ListFraudulent(ctx context.Context, page, size int) dto.PaginatedTransactions
	ListErrors(ctx context.Context, page, size int) dto.PaginatedTransactions
	GetMetrics(ctx context.Context, timeRange dto.TimeRange) dto.TransactionMetrics
	GetVolume(ctx context.Context) []dto.TimeSeriesPoint
	GetGeoDistribution(ctx context.Context, dimension dto.GeoDimension) []dto.GeoPoint
	Simulate(ctx context.Context, count int) error
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTransactions)
	r.Get("/fraudulent", h.ListFraudulent)
	r.Get("/errors", h.ListErrors)
	// filter variants take the same handler; the service re-resolves the
	// upstream endpoint from whichever filters are present
	r.Get("/filter/region", h.ListTransactions)
	r.Get("/filter/amount", h.ListTransactions)
	r.Get("/filter/combined", h.ListTransactions)
	r.Get("/metrics", h.GetMetrics)
	r.Get("/volume", h.GetVolume)
	r.Get("/geo-distribution", h.GetGeoDistribution)
	r.Post("/simulate", h.Simulate)
	return r
}

func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, size := parsePaging(r)
	filters := dto.ParseFilterParams(r.URL.Query())
	result := h.DashboardSvc.ListTransactions(r.Context(), page, size, filters)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) ListFraudulent(w http.ResponseWriter, r *http.Request) {
	page, size := parsePaging(r)
	result := h.DashboardSvc.ListFraudulent(r.Context(), page, size)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) ListErrors(w http.ResponseWriter, r *http.Request) {
	page, size := parsePaging(r)
	result := h.DashboardSvc.ListErrors(r.Context(), page, size)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) GetMetrics(w http.ResponseWriter, r *http.Request) {
	timeRange := dto.ParseTimeRange(r.URL.Query().Get("timeRange"))
	result := h.DashboardSvc.GetMetrics(r.Context(), timeRange)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) GetVolume(w http.ResponseWriter, r *http.Request) {
	result := h.DashboardSvc.GetVolume(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) GetGeoDistribution(w http.ResponseWriter, r *http.Request) {
	dimension := dto.ParseGeoDimension(r.URL.Query().Get("viewBy"))
	result := h.DashboardSvc.GetGeoDistribution(r.Context(), dimension)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) Simulate(w http.ResponseWriter, r *http.Request) {
	count := 100
	if v := r.URL.Query().Get("count"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("count must be a positive integer"))
			return
		}
		count = parsed
	}

	if err := h.DashboardSvc.Simulate(r.Context(), count); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusAccepted, map[string]any{
		"message": "simulation started",
		"count":   count,
	})
}

func parsePaging(r *http.Request) (page, size int) {
	page = 0
	size = pagination.DefaultPageSize
	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if v := r.URL.Query().Get("size"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return page, size
}
