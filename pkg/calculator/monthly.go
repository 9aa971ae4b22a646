package calculator

import (
	"sort"

	"order-analytics/pkg/models"

	"github.com/shopspring/decimal"
)

// MonthlySummaries buckets orders by purchase month. Months without orders are
// absent; rows come out in ascending period order.
func MonthlySummaries(orders []models.OrderRecord) []models.MonthlySummary {
	type bucket struct {
		orders  map[string]struct{}
		revenue decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, o := range orders {
		key := formatMonth(o.PurchasedAt)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{orders: make(map[string]struct{})}
			buckets[key] = b
		}
		b.orders[o.OrderID] = struct{}{}
		b.revenue = b.revenue.Add(o.Price)
	}

	periods := make([]string, 0, len(buckets))
	for k := range buckets {
		periods = append(periods, k)
	}
	sort.Strings(periods)

	out := make([]models.MonthlySummary, 0, len(periods))
	for _, p := range periods {
		b := buckets[p]
		out = append(out, models.MonthlySummary{
			Period:     p,
			OrderCount: len(b.orders),
			Revenue:    b.revenue,
		})
	}
	return out
}
