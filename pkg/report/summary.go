package report

import (
	"fmt"
	"io"
	"time"

	"order-analytics/pkg/calculator"
	"order-analytics/pkg/models"
)

// PrintSummary writes the plain-text digest shown at the end of a CLI run.
func PrintSummary(w io.Writer, rep *calculator.Report) {
	fmt.Fprintf(w, "window %s .. %s\n", dateOrOpen(rep.Start), dateOrOpen(rep.End))
	fmt.Fprintf(w, "orders=%d ; revenue=%s ; customers=%d\n",
		rep.Rollups.TotalOrders, rep.Rollups.TotalRevenue.StringFixed(2), rep.Rollups.Customers)
	fmt.Fprintf(w, "mean recency=%.2f ; mean frequency=%.2f ; mean monetary=%.2f\n",
		rep.Rollups.MeanRecency, rep.Rollups.MeanFrequency, rep.Rollups.MeanMonetary)

	fmt.Fprintln(w, "\nmonthly")
	for _, m := range rep.Monthly {
		fmt.Fprintf(w, "%s ; orders=%d ; revenue=%s\n", m.Period, m.OrderCount, m.Revenue.StringFixed(2))
	}

	printCounts(w, "best products", rep.Views.BestProducts)
	printCounts(w, "worst products", rep.Views.WorstProducts)
	printCounts(w, "top states", rep.Views.TopStates)
	printCounts(w, "segments", rep.Views.Segments)
	printCounts(w, "spending tiers", rep.Views.SpendingTiers)

	for _, warn := range rep.Warnings {
		fmt.Fprintf(w, "\nwarning: %v\n", warn)
	}
}

func printCounts(w io.Writer, title string, rows []models.CategoryCount) {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(rows) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s ; %d\n", r.Category, r.Count)
	}
}

func dateOrOpen(t time.Time) string {
	if t.IsZero() {
		return "open"
	}
	return t.Format(time.DateOnly)
}
