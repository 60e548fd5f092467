package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/dto"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/errs"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/models"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/query"
)

// DefaultTimeout bounds every backend request.
const DefaultTimeout = 5 * time.Second

const basePath = "/api/transactions"

// Client talks to the external transaction backend. It holds no state
// across calls; each request is independent and bounded by the configured
// timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the backend at baseURL. A non-positive
// timeout falls back to the default 5 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Transactions fetches one page of the listing variant selected by endpoint.
// Card identifiers in the response are masked before being returned.
func (c *Client) Transactions(ctx context.Context, endpoint query.Endpoint, page, size int, filters dto.FilterParams) (dto.PaginatedTransactions, error) {
	var result dto.PaginatedTransactions
	params := query.Values(page, size, filters)
	if err := c.get(ctx, string(endpoint), params, &result); err != nil {
		return dto.PaginatedTransactions{}, err
	}
	for i := range result.Transactions {
		result.Transactions[i].CardNumber = models.MaskCard(result.Transactions[i].CardNumber)
	}
	return result, nil
}

// Metrics fetches aggregate counts for the window ending now.
func (c *Client) Metrics(ctx context.Context, timeRange dto.TimeRange) (dto.TransactionMetrics, error) {
	start, end := timeRange.Window(time.Now())
	params := url.Values{}
	params.Set("startTime", start.UTC().Format(time.RFC3339))
	params.Set("endTime", end.UTC().Format(time.RFC3339))

	var result dto.TransactionMetrics
	if err := c.get(ctx, "/metrics", params, &result); err != nil {
		return dto.TransactionMetrics{}, err
	}
	return result, nil
}

// Volume fetches the hourly volume series for the trailing 24 hours.
func (c *Client) Volume(ctx context.Context) ([]dto.TimeSeriesPoint, error) {
	var result []dto.TimeSeriesPoint
	if err := c.get(ctx, "/volume", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GeoDistribution fetches the per-dimension geographic breakdown.
func (c *Client) GeoDistribution(ctx context.Context, dimension dto.GeoDimension) ([]dto.GeoPoint, error) {
	params := url.Values{}
	params.Set("viewBy", string(dimension))

	var result []dto.GeoPoint
	if err := c.get(ctx, "/geo-distribution", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Simulate asks the backend to generate count synthetic transactions.
// This is the one write path; failures propagate to the caller with no
// mock substitution.
func (c *Client) Simulate(ctx context.Context, count int) error {
	params := url.Values{}
	params.Set("count", strconv.Itoa(count))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL("/simulate", params), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewUpstreamError("simulate request failed", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errs.NewUpstreamError(
			fmt.Sprintf("simulate returned %s", resp.Status), resp.StatusCode, nil)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(endpoint, params), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewUpstreamError(fmt.Sprintf("GET %s failed", endpoint), 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errs.NewUpstreamError(
			fmt.Sprintf("GET %s returned %s", endpoint, resp.Status), resp.StatusCode, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) endpointURL(endpoint string, params url.Values) string {
	u := c.baseURL + basePath + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}
