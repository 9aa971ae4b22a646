package calculator

import (
	"fmt"
	"time"

	"order-analytics/pkg/logger"
	"order-analytics/pkg/models"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
)

const (
	topProducts = 5
	topStates   = 10
	topRFM      = 5
)

// Report holds every table derived from one filtered window.
type Report struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Monthly  []models.MonthlySummary      `json:"monthly"`
	Products CategoryTable                `json:"products"`
	States   CategoryTable                `json:"states"`
	RFM      []models.RFMRow              `json:"rfm"`
	Spending []models.SpendingTaggedOrder `json:"spending"`

	Rollups models.Rollups `json:"rollups"`
	Views   Views          `json:"views"`

	// Warnings carries non-fatal conditions such as *models.EmptyDatasetWarning.
	Warnings []error `json:"-"`
}

// Views are the ranked slices a dashboard shows next to the full tables.
type Views struct {
	BestProducts  []models.CategoryCount `json:"best_products"`
	WorstProducts []models.CategoryCount `json:"worst_products"`
	TopStates     []models.CategoryCount `json:"top_states"`
	Segments      []models.CategoryCount `json:"segments"`
	SpendingTiers []models.CategoryCount `json:"spending_tiers"`
	TopRecency    []models.RFMRow        `json:"top_recency"`
	TopFrequency  []models.RFMRow        `json:"top_frequency"`
	TopMonetary   []models.RFMRow        `json:"top_monetary"`
}

// Run filters orders to the configured window once and derives every table
// from that same subset. Range and binning errors abort the run and no
// partial report is returned.
func Run(orders []models.OrderRecord, cfg models.Config) (*Report, error) {
	stages := []string{"filter", "monthly", "products", "states", "rfm", "spending"}
	bar := progressbar.DefaultSilent(int64(len(stages)))
	if cfg.Verbose {
		bar = progressbar.Default(int64(len(stages)), "pipeline")
	}
	step := func(i int) {
		bar.Describe(stages[i])
		_ = bar.Add(1)
	}

	filtered, err := FilterByDate(orders, cfg.Start, cfg.End)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	step(0)
	logger.Debug("window filtered", "input", len(orders), "kept", len(filtered))

	rep := &Report{Start: cfg.Start, End: cfg.End}
	if len(filtered) == 0 {
		rep.Warnings = append(rep.Warnings, &models.EmptyDatasetWarning{Start: cfg.Start, End: cfg.End})
	}

	rep.Monthly = MonthlySummaries(filtered)
	step(1)
	rep.Products = CountDistinct(filtered, models.ColProductCategory, models.ColOrderID)
	step(2)
	rep.States = CountDistinct(filtered, models.ColCustomerState, models.ColCustomerID)
	step(3)
	rep.RFM = ScoreRFM(BuildRFM(filtered))
	step(4)
	rep.Spending, err = BinSpending(filtered)
	if err != nil {
		return nil, fmt.Errorf("spending: %w", err)
	}
	step(5)
	_ = bar.Finish()

	rep.Rollups = rollups(rep.Monthly, rep.RFM)
	rep.Views = Views{
		BestProducts:  rep.Products.Top(topProducts),
		WorstProducts: rep.Products.Worst(topProducts),
		TopStates:     rep.States.Top(topStates),
		Segments:      SegmentCounts(rep.RFM),
		SpendingTiers: SpendingCounts(rep.Spending),
		TopRecency:    TopBy(rep.RFM, MetricRecency, topRFM),
		TopFrequency:  TopBy(rep.RFM, MetricFrequency, topRFM),
		TopMonetary:   TopBy(rep.RFM, MetricMonetary, topRFM),
	}

	logger.Debug("pipeline done",
		"months", len(rep.Monthly), "categories", len(rep.Products),
		"states", len(rep.States), "customers", len(rep.RFM))
	return rep, nil
}

func rollups(monthly []models.MonthlySummary, rfm []models.RFMRow) models.Rollups {
	r := models.Rollups{TotalRevenue: decimal.Zero, Customers: len(rfm)}
	for _, m := range monthly {
		r.TotalOrders += m.OrderCount
		r.TotalRevenue = r.TotalRevenue.Add(m.Revenue)
	}
	if len(rfm) == 0 {
		return r
	}

	var recency, frequency int
	monetary := decimal.Zero
	for _, c := range rfm {
		recency += c.Recency
		frequency += c.Frequency
		monetary = monetary.Add(c.Monetary)
	}
	n := float64(len(rfm))
	r.MeanRecency = float64(recency) / n
	r.MeanFrequency = float64(frequency) / n
	r.MeanMonetary = monetary.Div(decimal.NewFromInt(int64(len(rfm)))).InexactFloat64()
	return r
}
