package mockdata

import "github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/dto"

// Closed enumerations the generator draws from. Values match what the
// transaction backend produces so generated pages are indistinguishable in
// shape from real ones.

var cardBrands = []string{"Visa", "Mastercard", "Amex", "Discover"}

var merchants = []string{
	"Amazon", "Walmart", "Target", "Best Buy", "Apple Store",
	"Starbucks", "McDonald's", "Uber", "Netflix", "Spotify",
}

var countries = []string{
	"USA", "UK", "Germany", "France", "Canada",
	"Japan", "Australia", "India", "Brazil", "China",
}

var regions = []string{
	"East Coast", "West Coast", "Midwest", "South",
	"Northwest", "Central", "Northeast",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Miami",
	"Seattle", "Boston", "San Francisco", "Dallas", "Denver",
}

var transactionTypes = []string{"PURCHASE", "REFUND", "WITHDRAWAL", "DEPOSIT", "TRANSFER"}

var currencies = []string{"USD", "EUR", "GBP", "CAD", "JPY", "AUD", "INR", "BRL", "CNY"}

var errorMessages = []string{
	"Insufficient funds",
	"Card expired",
	"Invalid card number",
	"Transaction timeout",
	"Network error",
	"Card blocked",
	"Security verification failed",
	"Processing error",
}

// Fixed (total, fraud, error) triples per metrics window.
var metricsByRange = map[dto.TimeRange][3]int{
	dto.Range24h: {500, 25, 15},
	dto.Range7d:  {3500, 175, 105},
	dto.Range30d: {15000, 750, 450},
}

var geoByCountry = []dto.GeoPoint{
	{Name: "USA", Transactions: 450, Fraudulent: 22},
	{Name: "UK", Transactions: 320, Fraudulent: 15},
	{Name: "Germany", Transactions: 280, Fraudulent: 12},
	{Name: "France", Transactions: 240, Fraudulent: 10},
	{Name: "Canada", Transactions: 190, Fraudulent: 8},
}

var geoByRegion = []dto.GeoPoint{
	{Name: "East Coast", Transactions: 220, Fraudulent: 12},
	{Name: "West Coast", Transactions: 180, Fraudulent: 9},
	{Name: "Midwest", Transactions: 150, Fraudulent: 7},
	{Name: "South", Transactions: 120, Fraudulent: 6},
	{Name: "Northwest", Transactions: 90, Fraudulent: 4},
}

var geoByCity = []dto.GeoPoint{
	{Name: "New York", Transactions: 120, Fraudulent: 7},
	{Name: "Los Angeles", Transactions: 100, Fraudulent: 5},
	{Name: "Chicago", Transactions: 80, Fraudulent: 4},
	{Name: "Houston", Transactions: 70, Fraudulent: 3},
	{Name: "Miami", Transactions: 60, Fraudulent: 3},
}
