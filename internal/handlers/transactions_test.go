package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/dto"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/errs"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/models"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/response"
)

type stubService struct {
	page        dto.PaginatedTransactions
	metrics     dto.TransactionMetrics
	volume      []dto.TimeSeriesPoint
	geo         []dto.GeoPoint
	simulateErr error

	lastPage    int
	lastSize    int
	lastFilters dto.FilterParams
	lastRange   dto.TimeRange
	lastDim     dto.GeoDimension
	lastCount   int
}

func (s *stubService) ListTransactions(ctx context.Context, page, size int, filters dto.FilterParams) dto.PaginatedTransactions {
	s.lastPage, s.lastSize, s.lastFilters = page, size, filters
	return s.page
}

func (s *stubService) ListFraudulent(ctx context.Context, page, size int) dto.PaginatedTransactions {
	s.lastPage, s.lastSize = page, size
	return s.page
}

func (s *stubService) ListErrors(ctx context.Context, page, size int) dto.PaginatedTransactions {
	s.lastPage, s.lastSize = page, size
	return s.page
}

func (s *stubService) GetMetrics(ctx context.Context, timeRange dto.TimeRange) dto.TransactionMetrics {
	s.lastRange = timeRange
	return s.metrics
}

func (s *stubService) GetVolume(ctx context.Context) []dto.TimeSeriesPoint {
	return s.volume
}

func (s *stubService) GetGeoDistribution(ctx context.Context, dimension dto.GeoDimension) []dto.GeoPoint {
	s.lastDim = dimension
	return s.geo
}

func (s *stubService) Simulate(ctx context.Context, count int) error {
	s.lastCount = count
	return s.simulateErr
}

func newTestHandlers(svc DashboardService) *transactionHandlers {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		DashboardSvc:    svc,
	}
	return NewTransactionHandlers(deps)
}

func TestListTransactionsParsesPagingAndFilters(t *testing.T) {
	stub := &stubService{
		page: dto.PaginatedTransactions{
			Transactions: []models.Transaction{{ID: 1}},
			CurrentPage:  3,
			TotalItems:   235,
			TotalPages:   24,
		},
	}
	h := newTestHandlers(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?page=3&size=25&country=USA&minAmount=10", nil)
	rec := httptest.NewRecorder()

	h.ListTransactions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if stub.lastPage != 3 || stub.lastSize != 25 {
		t.Fatalf("paging mismatch: page=%d size=%d", stub.lastPage, stub.lastSize)
	}
	if stub.lastFilters.Country == nil || *stub.lastFilters.Country != "USA" {
		t.Fatalf("filters not forwarded: %+v", stub.lastFilters)
	}
	if stub.lastFilters.MinAmount == nil || *stub.lastFilters.MinAmount != 10 {
		t.Fatalf("minAmount not forwarded: %+v", stub.lastFilters)
	}

	var payload dto.PaginatedTransactions
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.TotalItems != 235 || payload.TotalPages != 24 {
		t.Fatalf("payload mismatch: %+v", payload)
	}
}

func TestListTransactionsDefaultsPaging(t *testing.T) {
	stub := &stubService{}
	h := newTestHandlers(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?page=bogus&size=-5", nil)
	rec := httptest.NewRecorder()

	h.ListTransactions(rec, req)

	if stub.lastPage != 0 || stub.lastSize != 10 {
		t.Fatalf("invalid paging must fall back to defaults, got page=%d size=%d", stub.lastPage, stub.lastSize)
	}
}

func TestGetMetricsForwardsRange(t *testing.T) {
	stub := &stubService{
		metrics: dto.TransactionMetrics{TotalTransactions: 3500, FraudRate: 5, ErrorRate: 3},
	}
	h := newTestHandlers(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/metrics?timeRange=7d", nil)
	rec := httptest.NewRecorder()

	h.GetMetrics(rec, req)

	if stub.lastRange != dto.Range7d {
		t.Fatalf("range mismatch: got %q", stub.lastRange)
	}

	var payload dto.TransactionMetrics
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.TotalTransactions != 3500 {
		t.Fatalf("payload mismatch: %+v", payload)
	}
}

func TestGetGeoDistributionForwardsDimension(t *testing.T) {
	stub := &stubService{geo: []dto.GeoPoint{{Name: "East Coast"}}}
	h := newTestHandlers(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/geo-distribution?viewBy=region", nil)
	rec := httptest.NewRecorder()

	h.GetGeoDistribution(rec, req)

	if stub.lastDim != dto.GeoByRegion {
		t.Fatalf("dimension mismatch: got %q", stub.lastDim)
	}
}

func TestSimulateRejectsBadCount(t *testing.T) {
	h := newTestHandlers(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/simulate?count=zero", nil)
	rec := httptest.NewRecorder()

	h.Simulate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestSimulateSurfacesBackendFailure(t *testing.T) {
	stub := &stubService{
		simulateErr: errs.NewUpstreamError("503", http.StatusServiceUnavailable, nil),
	}
	h := newTestHandlers(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/simulate?count=100", nil)
	rec := httptest.NewRecorder()

	h.Simulate(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var payload response.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Code != "backend_unavailable" {
		t.Fatalf("error code mismatch: %+v", payload)
	}
}

func TestSimulateDefaultsCount(t *testing.T) {
	stub := &stubService{}
	h := newTestHandlers(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/simulate", nil)
	rec := httptest.NewRecorder()

	h.Simulate(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", rec.Code)
	}
	if stub.lastCount != 100 {
		t.Fatalf("default count mismatch: got %d", stub.lastCount)
	}
}
