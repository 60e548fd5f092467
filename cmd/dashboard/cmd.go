package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/dto"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/mockdata"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/pagination"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/services"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/upstream"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/pkg/logger"
)

// Command line flags
var (
	upstreamURL = flag.String("upstream", "http://localhost:8081", "Base URL of the transaction backend")
	view        = flag.String("view", "metrics", "View to render: metrics, transactions, fraudulent, errors, volume, geo")
	timeRange   = flag.String("range", "24h", "Metrics time range: 24h, 7d, 30d")
	viewBy      = flag.String("view-by", "country", "Geo dimension: country, region, city")
	page        = flag.Int("page", 0, "Zero-based page for transaction views")
	size        = flag.Int("size", pagination.DefaultPageSize, "Page size for transaction views")
	country     = flag.String("country", "", "Filter: exact country match")
	region      = flag.String("region", "", "Filter: exact region match")
	city        = flag.String("city", "", "Filter: exact city match")
	minAmount   = flag.String("min-amount", "", "Filter: inclusive lower amount bound")
	maxAmount   = flag.String("max-amount", "", "Filter: inclusive upper amount bound")
	outputDir   = flag.String("output", "charts", "Directory for rendered chart PNGs")
	charts      = flag.Bool("charts", false, "Also render PNG charts for volume and geo views")
)

func main() {
	flag.Parse()

	log := logger.New(os.Getenv("LOGLEVEL"), func(level slog.Level) slog.Handler {
		return logger.NewJSONHandler(level)
	})
	ctx := logger.ToContext(context.Background(), log)

	client := upstream.NewClient(*upstreamURL, upstream.DefaultTimeout)
	svc := services.NewDashboardService(client, mockdata.New(0))

	switch *view {
	case "metrics":
		renderMetrics(svc.GetMetrics(ctx, dto.ParseTimeRange(*timeRange)))
	case "transactions":
		renderTransactions(svc.ListTransactions(ctx, *page, *size, parseFilters()), *size)
	case "fraudulent":
		renderTransactions(svc.ListFraudulent(ctx, *page, *size), *size)
	case "errors":
		renderTransactions(svc.ListErrors(ctx, *page, *size), *size)
	case "volume":
		points := svc.GetVolume(ctx)
		renderVolume(points)
		if *charts {
			renderVolumeChart(points)
		}
	case "geo":
		points := svc.GetGeoDistribution(ctx, dto.ParseGeoDimension(*viewBy))
		renderGeo(points)
		if *charts {
			renderGeoChart(points)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown view %q\n", *view)
		os.Exit(2)
	}
}

func parseFilters() dto.FilterParams {
	var f dto.FilterParams
	if *country != "" {
		f.Country = country
	}
	if *region != "" {
		f.Region = region
	}
	if *city != "" {
		f.City = city
	}
	// non-numeric bounds are treated as absent, matching the API
	if v, err := strconv.ParseFloat(*minAmount, 64); err == nil && *minAmount != "" {
		f.MinAmount = &v
	}
	if v, err := strconv.ParseFloat(*maxAmount, 64); err == nil && *maxAmount != "" {
		f.MaxAmount = &v
	}
	return f
}

func renderMetrics(m dto.TransactionMetrics) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Window", "Total", "Fraudulent", "Errors", "Fraud Rate", "Error Rate"})
	table.Append([]string{
		fmt.Sprintf("%s .. %s", m.StartTime, m.EndTime),
		strconv.Itoa(m.TotalTransactions),
		strconv.Itoa(m.FraudulentTransactions),
		strconv.Itoa(m.ErrorTransactions),
		fmt.Sprintf("%.2f%%", m.FraudRate),
		fmt.Sprintf("%.2f%%", m.ErrorRate),
	})
	table.Render()
}

func renderTransactions(result dto.PaginatedTransactions, size int) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Card", "Amount", "Currency", "Merchant", "Country", "City", "Type", "Status", "Timestamp"})
	for _, tx := range result.Transactions {
		status := "OK"
		if tx.IsFraudulent {
			status = "FRAUD"
		} else if tx.IsError {
			status = "ERROR: " + tx.ErrorMessage
		}
		table.Append([]string{
			strconv.FormatInt(tx.ID, 10),
			tx.CardNumber,
			fmt.Sprintf("%.2f", tx.Amount),
			tx.Currency,
			tx.MerchantName,
			tx.Country,
			tx.City,
			tx.TransactionType,
			status,
			tx.Timestamp,
		})
	}
	table.Render()

	pager := pagination.New(size)
	pager.SetTotal(result.TotalItems)
	pager.GoTo(result.CurrentPage)
	first, last := pager.Range()
	fmt.Printf("Showing %d to %d of %d entries (page %d of %d)\n",
		first, last, pager.TotalItems(), pager.CurrentPage()+1, pager.TotalPages())
}

func renderVolume(points []dto.TimeSeriesPoint) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Hour", "Total", "Fraudulent", "Errors"})
	for _, p := range points {
		table.Append([]string{
			p.Time,
			strconv.Itoa(p.Total),
			strconv.Itoa(p.Fraudulent),
			strconv.Itoa(p.Error),
		})
	}
	table.Render()
}

func renderGeo(points []dto.GeoPoint) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Transactions", "Fraudulent"})
	for _, p := range points {
		table.Append([]string{p.Name, strconv.Itoa(p.Transactions), strconv.Itoa(p.Fraudulent)})
	}
	table.Render()
}

func renderVolumeChart(points []dto.TimeSeriesPoint) {
	xs := make([]float64, len(points))
	totals := make([]float64, len(points))
	frauds := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(i)
		totals[i] = float64(p.Total)
		frauds[i] = float64(p.Fraudulent)
	}

	labels := points
	graph := chart.Chart{
		Title:  "Transaction Volume (24h)",
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					idx := int(vf)
					if idx >= 0 && idx < len(labels) {
						return labels[idx].Time
					}
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Total", XValues: xs, YValues: totals},
			chart.ContinuousSeries{Name: "Fraudulent", XValues: xs, YValues: frauds},
		},
	}

	saveChart(&graph, "volume_chart.png")
}

func renderGeoChart(points []dto.GeoPoint) {
	var bars []chart.Value
	for _, p := range points {
		bars = append(bars, chart.Value{Label: p.Name, Value: float64(p.Transactions)})
	}

	barChart := chart.BarChart{
		Title:  "Transactions by Location",
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Bars: bars,
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("Warning: Failed to create output directory: %v\n", err)
		return
	}
	outputFile := filepath.Join(*outputDir, "geo_chart.png")
	f, err := os.Create(outputFile)
	if err != nil {
		fmt.Printf("Warning: Failed to create chart file: %v\n", err)
		return
	}
	defer f.Close()

	if err := barChart.Render(chart.PNG, f); err != nil {
		fmt.Printf("Warning: Failed to render chart: %v\n", err)
		return
	}
	fmt.Printf("Chart saved to: %s\n", outputFile)
}

func saveChart(graph *chart.Chart, name string) {
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("Warning: Failed to create output directory: %v\n", err)
		return
	}
	outputFile := filepath.Join(*outputDir, name)
	f, err := os.Create(outputFile)
	if err != nil {
		fmt.Printf("Warning: Failed to create chart file: %v\n", err)
		return
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		fmt.Printf("Warning: Failed to render chart: %v\n", err)
		return
	}
	fmt.Printf("Chart saved to: %s\n", outputFile)
}
