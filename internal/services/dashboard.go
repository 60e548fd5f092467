package services

import (
	"context"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/dto"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/mockdata"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/query"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/upstream"
)

type transactionFetcher interface {
	Transactions(ctx context.Context, endpoint query.Endpoint, page, size int, filters dto.FilterParams) (dto.PaginatedTransactions, error)
	Metrics(ctx context.Context, timeRange dto.TimeRange) (dto.TransactionMetrics, error)
	Volume(ctx context.Context) ([]dto.TimeSeriesPoint, error)
	GeoDistribution(ctx context.Context, dimension dto.GeoDimension) ([]dto.GeoPoint, error)
	Simulate(ctx context.Context, count int) error
}

// DashboardService is the data-access layer behind every dashboard view.
// Reads go to the transaction backend and transparently substitute
// generated data when the call fails; the simulate write path propagates
// failure untouched.
type DashboardService struct {
	fetcher transactionFetcher
	mock    *mockdata.Generator

	listView ViewState[dto.PaginatedTransactions]
}

func NewDashboardService(fetcher transactionFetcher, mock *mockdata.Generator) *DashboardService {
	return &DashboardService{
		fetcher: fetcher,
		mock:    mock,
	}
}

// ListTransactions returns one page of the general listing. The endpoint
// variant is resolved from the active filters; on backend failure the page
// is generated locally with the same filters applied.
func (s *DashboardService) ListTransactions(ctx context.Context, page, size int, filters dto.FilterParams) dto.PaginatedTransactions {
	seq := s.listView.Begin()
	result := upstream.WithFallback(ctx,
		func(ctx context.Context) (dto.PaginatedTransactions, error) {
			return s.fetcher.Transactions(ctx, query.Resolve(filters), page, size, filters)
		},
		func() dto.PaginatedTransactions {
			return s.mock.Transactions(page, size, filters)
		},
	)
	s.listView.Complete(seq, result)
	return result
}

// ListFraudulent returns one page of the fraud-only listing. Filters are
// not composable with this view; it always uses its dedicated endpoint.
func (s *DashboardService) ListFraudulent(ctx context.Context, page, size int) dto.PaginatedTransactions {
	return upstream.WithFallback(ctx,
		func(ctx context.Context) (dto.PaginatedTransactions, error) {
			return s.fetcher.Transactions(ctx, query.EndpointFraudulent, page, size, dto.FilterParams{})
		},
		func() dto.PaginatedTransactions {
			return s.mock.FraudulentTransactions(page, size)
		},
	)
}

// ListErrors returns one page of the error-only listing.
func (s *DashboardService) ListErrors(ctx context.Context, page, size int) dto.PaginatedTransactions {
	return upstream.WithFallback(ctx,
		func(ctx context.Context) (dto.PaginatedTransactions, error) {
			return s.fetcher.Transactions(ctx, query.EndpointErrors, page, size, dto.FilterParams{})
		},
		func() dto.PaginatedTransactions {
			return s.mock.ErrorTransactions(page, size)
		},
	)
}

// GetMetrics returns aggregate counts for the requested window.
func (s *DashboardService) GetMetrics(ctx context.Context, timeRange dto.TimeRange) dto.TransactionMetrics {
	return upstream.WithFallback(ctx,
		func(ctx context.Context) (dto.TransactionMetrics, error) {
			return s.fetcher.Metrics(ctx, timeRange)
		},
		func() dto.TransactionMetrics {
			return s.mock.Metrics(timeRange)
		},
	)
}

// GetVolume returns the hourly volume series for the trailing 24 hours.
func (s *DashboardService) GetVolume(ctx context.Context) []dto.TimeSeriesPoint {
	return upstream.WithFallback(ctx,
		func(ctx context.Context) ([]dto.TimeSeriesPoint, error) {
			return s.fetcher.Volume(ctx)
		},
		s.mock.VolumeSeries,
	)
}

// GetGeoDistribution returns the geographic breakdown for the requested
// dimension.
func (s *DashboardService) GetGeoDistribution(ctx context.Context, dimension dto.GeoDimension) []dto.GeoPoint {
	return upstream.WithFallback(ctx,
		func(ctx context.Context) ([]dto.GeoPoint, error) {
			return s.fetcher.GeoDistribution(ctx, dimension)
		},
		func() []dto.GeoPoint {
			return s.mock.GeoDistribution(dimension)
		},
	)
}

// Simulate triggers backend-side generation of count transactions. No
// fallback: if the backend is down there is nothing to simulate against.
func (s *DashboardService) Simulate(ctx context.Context, count int) error {
	return s.fetcher.Simulate(ctx, count)
}

// LatestListing returns the most recent general-listing page recorded by
// the latest issued fetch, if any.
func (s *DashboardService) LatestListing() (dto.PaginatedTransactions, bool) {
	return s.listView.Current()
}
