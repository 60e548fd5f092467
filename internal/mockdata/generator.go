package mockdata

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/dto"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/models"
)

const (
	// TotalItems is the size of the synthetic backing set for the general
	// listing.
	TotalItems = 235

	// flaggedBackingSize is the backing set the fraud-only and error-only
	// listings are drawn from.
	flaggedBackingSize = 200

	fraudProbability = 0.05
	errorProbability = 0.03
)

// Generator produces synthetic transactions and aggregates with the same
// distributions the real backend exhibits: roughly 5% fraud and 3% errors
// among the remainder. Substituted for backend responses when the backend
// is unreachable.
type Generator struct {
	rand *rand.Rand
	now  func() time.Time
}

// New returns a Generator seeded with the given value. A zero seed uses the
// current time, giving fresh content on every process start.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
		now:  time.Now,
	}
}

// Transaction synthesises a single record. Exactly one of fraud, error or
// success holds; ErrorMessage is set only on errors.
func (g *Generator) Transaction(id int64) models.Transaction {
	brand := cardBrands[g.rand.Intn(len(cardBrands))]
	card := fmt.Sprintf("%s **** **** %d", brand, 1000+g.rand.Intn(9000))

	isFraudulent := g.rand.Float64() < fraudProbability
	isError := !isFraudulent && g.rand.Float64() < errorProbability

	errorMessage := ""
	if isError {
		errorMessage = errorMessages[g.rand.Intn(len(errorMessages))]
	}

	// uniform over the trailing 7 days
	offset := time.Duration(g.rand.Int63n(int64(7 * 24 * time.Hour)))
	timestamp := g.now().Add(-offset)

	return models.Transaction{
		ID:              id,
		CardNumber:      card,
		Amount:          roundCents(g.rand.Float64()*999 + 1),
		Currency:        currencies[g.rand.Intn(len(currencies))],
		Timestamp:       timestamp.UTC().Format(time.RFC3339),
		MerchantName:    merchants[g.rand.Intn(len(merchants))],
		Country:         countries[g.rand.Intn(len(countries))],
		Region:          regions[g.rand.Intn(len(regions))],
		City:            cities[g.rand.Intn(len(cities))],
		TransactionType: transactionTypes[g.rand.Intn(len(transactionTypes))],
		IsFraudulent:    isFraudulent,
		IsError:         isError,
		ErrorMessage:    errorMessage,
	}
}

// Transactions returns page `page` of the synthetic listing. Filters are
// applied to the full backing set before pagination, so totals describe the
// filtered population rather than a single page.
func (g *Generator) Transactions(page, size int, filters dto.FilterParams) dto.PaginatedTransactions {
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}

	if filters.IsZero() {
		// unfiltered pages don't need the whole backing set
		items := make([]models.Transaction, 0, size)
		for i := 0; i < size; i++ {
			id := int64(page*size + i + 1)
			if id > TotalItems {
				break
			}
			items = append(items, g.Transaction(id))
		}
		return paginateKnown(items, page, size, TotalItems)
	}

	backing := g.backingSet(TotalItems)
	filtered := backing[:0]
	for _, tx := range backing {
		if filters.Matches(tx) {
			filtered = append(filtered, tx)
		}
	}
	return paginate(filtered, page, size)
}

// FraudulentTransactions pages through the fraudulent subset of a fixed
// backing set.
func (g *Generator) FraudulentTransactions(page, size int) dto.PaginatedTransactions {
	return g.flaggedPage(page, size, func(tx models.Transaction) bool { return tx.IsFraudulent })
}

// ErrorTransactions pages through the errored subset of a fixed backing set.
func (g *Generator) ErrorTransactions(page, size int) dto.PaginatedTransactions {
	return g.flaggedPage(page, size, func(tx models.Transaction) bool { return tx.IsError })
}

func (g *Generator) flaggedPage(page, size int, keep func(models.Transaction) bool) dto.PaginatedTransactions {
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}
	var flagged []models.Transaction
	for _, tx := range g.backingSet(flaggedBackingSize) {
		if keep(tx) {
			flagged = append(flagged, tx)
		}
	}
	return paginate(flagged, page, size)
}

func (g *Generator) backingSet(n int) []models.Transaction {
	set := make([]models.Transaction, n)
	for i := range set {
		set[i] = g.Transaction(int64(i + 1))
	}
	return set
}

// Metrics returns the fixed aggregate counts for the requested window.
func (g *Generator) Metrics(timeRange dto.TimeRange) dto.TransactionMetrics {
	counts, ok := metricsByRange[timeRange]
	if !ok {
		counts = metricsByRange[dto.Range24h]
	}
	total, fraud, errs := counts[0], counts[1], counts[2]

	var fraudRate, errorRate float64
	if total > 0 {
		fraudRate = float64(fraud) / float64(total) * 100
		errorRate = float64(errs) / float64(total) * 100
	}

	start, end := timeRange.Window(g.now())
	return dto.TransactionMetrics{
		TotalTransactions:      total,
		FraudulentTransactions: fraud,
		ErrorTransactions:      errs,
		FraudRate:              fraudRate,
		ErrorRate:              errorRate,
		StartTime:              start.UTC().Format(time.RFC3339),
		EndTime:                end.UTC().Format(time.RFC3339),
	}
}

// VolumeSeries returns one point per hour for the trailing 24 hours, oldest
// first. Fraud and error counts are fixed fractions of each bucket's total.
func (g *Generator) VolumeSeries() []dto.TimeSeriesPoint {
	now := g.now()
	points := make([]dto.TimeSeriesPoint, 0, 24)
	for i := 23; i >= 0; i-- {
		bucket := now.Add(-time.Duration(i) * time.Hour)
		total := 50 + g.rand.Intn(100)
		points = append(points, dto.TimeSeriesPoint{
			Time:       bucket.Format("15:04"),
			Total:      total,
			Fraudulent: int(math.Floor(float64(total) * fraudProbability)),
			Error:      int(math.Floor(float64(total) * errorProbability)),
		})
	}
	return points
}

// GeoDistribution returns the fixed five-row table for the requested
// dimension.
func (g *Generator) GeoDistribution(dimension dto.GeoDimension) []dto.GeoPoint {
	var table []dto.GeoPoint
	switch dimension {
	case dto.GeoByRegion:
		table = geoByRegion
	case dto.GeoByCity:
		table = geoByCity
	default:
		table = geoByCountry
	}
	out := make([]dto.GeoPoint, len(table))
	copy(out, table)
	return out
}

// paginate slices one page out of an already-filtered set.
func paginate(items []models.Transaction, page, size int) dto.PaginatedTransactions {
	totalItems := len(items)
	start := page * size
	if start > totalItems {
		start = totalItems
	}
	end := start + size
	if end > totalItems {
		end = totalItems
	}
	return paginateKnown(items[start:end], page, size, totalItems)
}

func paginateKnown(items []models.Transaction, page, size, totalItems int) dto.PaginatedTransactions {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + size - 1) / size
	}
	if items == nil {
		items = []models.Transaction{}
	}
	return dto.PaginatedTransactions{
		Transactions: items,
		CurrentPage:  page,
		TotalItems:   totalItems,
		TotalPages:   totalPages,
	}
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
