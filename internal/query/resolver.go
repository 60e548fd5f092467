package query

import (
	"net/url"
	"strconv"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/dto"
)

// Endpoint is the path suffix appended to /api/transactions for a listing
// variant.
type Endpoint string

const (
	EndpointAll        Endpoint = ""
	EndpointFraudulent Endpoint = "/fraudulent"
	EndpointErrors     Endpoint = "/errors"
	EndpointRegion     Endpoint = "/filter/region"
	EndpointAmount     Endpoint = "/filter/amount"
	EndpointCombined   Endpoint = "/filter/combined"
)

// Resolve picks the listing variant for a set of filters: location fields
// alone select the region filter, amount bounds alone the amount filter,
// both together the combined filter, and no filters the base listing.
//
// The fraud-only and error-only listings are not resolved here; they have
// fixed endpoints and ignore filters entirely.
func Resolve(filters dto.FilterParams) Endpoint {
	switch {
	case filters.HasLocation() && filters.HasAmount():
		return EndpointCombined
	case filters.HasLocation():
		return EndpointRegion
	case filters.HasAmount():
		return EndpointAmount
	default:
		return EndpointAll
	}
}

// Values encodes paging, the fixed sort order and any active filter fields
// into request parameters for a listing call.
func Values(page, size int, filters dto.FilterParams) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))
	params.Set("sortBy", "timestamp")
	params.Set("direction", "desc")

	if filters.Country != nil {
		params.Set("country", *filters.Country)
	}
	if filters.Region != nil {
		params.Set("region", *filters.Region)
	}
	if filters.City != nil {
		params.Set("city", *filters.City)
	}
	if filters.MinAmount != nil {
		params.Set("minAmount", strconv.FormatFloat(*filters.MinAmount, 'f', -1, 64))
	}
	if filters.MaxAmount != nil {
		params.Set("maxAmount", strconv.FormatFloat(*filters.MaxAmount, 'f', -1, 64))
	}
	return params
}
