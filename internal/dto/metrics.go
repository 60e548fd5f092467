package dto

import "time"

// TimeRange selects the aggregation window for dashboard metrics.
type TimeRange string

const (
	Range24h TimeRange = "24h"
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
)

// ParseTimeRange maps a query value onto a known range, defaulting to 24h.
func ParseTimeRange(s string) TimeRange {
	switch TimeRange(s) {
	case Range7d:
		return Range7d
	case Range30d:
		return Range30d
	default:
		return Range24h
	}
}

// Window returns the [start, end] boundaries of the range ending at now.
func (r TimeRange) Window(now time.Time) (start, end time.Time) {
	switch r {
	case Range7d:
		return now.Add(-7 * 24 * time.Hour), now
	case Range30d:
		return now.Add(-30 * 24 * time.Hour), now
	default:
		return now.Add(-24 * time.Hour), now
	}
}

// TransactionMetrics summarises a transaction population within a window.
// Rates are percentages, defined as 0 when the total is 0.
type TransactionMetrics struct {
	TotalTransactions      int     `json:"totalTransactions"`
	FraudulentTransactions int     `json:"fraudulentTransactions"`
	ErrorTransactions      int     `json:"errorTransactions"`
	FraudRate              float64 `json:"fraudRate"`
	ErrorRate              float64 `json:"errorRate"`
	StartTime              string  `json:"startTime"`
	EndTime                string  `json:"endTime"`
}

// TimeSeriesPoint is one hourly bucket of the volume chart.
type TimeSeriesPoint struct {
	Time       string `json:"time"` // HH:MM label
	Total      int    `json:"total"`
	Fraudulent int    `json:"fraudulent"`
	Error      int    `json:"error"`
}

// GeoPoint is one row of the geographic distribution, keyed by country,
// region or city depending on the requested dimension.
type GeoPoint struct {
	Name         string `json:"name"`
	Transactions int    `json:"transactions"`
	Fraudulent   int    `json:"fraudulent"`
}

// GeoDimension selects the grouping of the geographic distribution.
type GeoDimension string

const (
	GeoByCountry GeoDimension = "country"
	GeoByRegion  GeoDimension = "region"
	GeoByCity    GeoDimension = "city"
)

// ParseGeoDimension maps a query value onto a known dimension, defaulting
// to country.
func ParseGeoDimension(s string) GeoDimension {
	switch GeoDimension(s) {
	case GeoByRegion:
		return GeoByRegion
	case GeoByCity:
		return GeoByCity
	default:
		return GeoByCountry
	}
}
