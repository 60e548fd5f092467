package dto

import (
	"net/url"
	"strconv"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/models"
)

// PaginatedTransactions mirrors the backend's page envelope. CurrentPage is
// zero-based; TotalPages is ceil(TotalItems/size) for the size the page was
// requested with.
type PaginatedTransactions struct {
	Transactions []models.Transaction `json:"transactions"`
	CurrentPage  int                  `json:"currentPage"`
	TotalItems   int                  `json:"totalItems"`
	TotalPages   int                  `json:"totalPages"`
}

// FilterParams narrows a transaction listing. A nil field means no
// constraint on that dimension. Min/max ordering is not validated; inverted
// bounds simply match nothing.
type FilterParams struct {
	Country   *string  `json:"country,omitempty"`
	Region    *string  `json:"region,omitempty"`
	City      *string  `json:"city,omitempty"`
	MinAmount *float64 `json:"minAmount,omitempty"`
	MaxAmount *float64 `json:"maxAmount,omitempty"`
}

// HasLocation reports whether any of the exact-match location fields is set.
func (f FilterParams) HasLocation() bool {
	return f.Country != nil || f.Region != nil || f.City != nil
}

// HasAmount reports whether either amount bound is set.
func (f FilterParams) HasAmount() bool {
	return f.MinAmount != nil || f.MaxAmount != nil
}

// IsZero reports whether no constraint is active.
func (f FilterParams) IsZero() bool {
	return !f.HasLocation() && !f.HasAmount()
}

// Matches applies the filter conjunction to a single transaction.
func (f FilterParams) Matches(tx models.Transaction) bool {
	if f.Country != nil && tx.Country != *f.Country {
		return false
	}
	if f.Region != nil && tx.Region != *f.Region {
		return false
	}
	if f.City != nil && tx.City != *f.City {
		return false
	}
	if f.MinAmount != nil && tx.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && tx.Amount > *f.MaxAmount {
		return false
	}
	return true
}

// ParseFilterParams reads filter fields from a query string. Non-numeric
// amount bounds are treated as absent rather than rejected.
func ParseFilterParams(values url.Values) FilterParams {
	var f FilterParams
	if v := values.Get("country"); v != "" {
		f.Country = &v
	}
	if v := values.Get("region"); v != "" {
		f.Region = &v
	}
	if v := values.Get("city"); v != "" {
		f.City = &v
	}
	if v := values.Get("minAmount"); v != "" {
		if amt, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinAmount = &amt
		}
	}
	if v := values.Get("maxAmount"); v != "" {
		if amt, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxAmount = &amt
		}
	}
	return f
}
