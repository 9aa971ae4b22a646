package calculator

import (
	"cmp"
	"sort"
	"time"

	"order-analytics/pkg/models"

	"github.com/shopspring/decimal"
)

// Score weights. Recency weighs most as the strongest churn signal.
const (
	recencyWeight   = 0.4
	frequencyWeight = 0.3
	monetaryWeight  = 0.3

	maxScore = 5.0
)

// RFM metrics accepted by TopBy.
const (
	MetricRecency   = "recency"
	MetricFrequency = "frequency"
	MetricMonetary  = "monetary"
)

// BuildRFM computes recency, frequency and monetary per customer. Recency is
// measured in whole days from the latest purchase date across all orders.
// Rows are ordered by customer ID.
func BuildRFM(orders []models.OrderRecord) []models.RFMRow {
	type acc struct {
		orders   map[string]struct{}
		monetary decimal.Decimal
		lastDay  time.Time
	}
	customers := make(map[string]*acc)
	var latest time.Time
	for _, o := range orders {
		d := dayOf(o.PurchasedAt)
		if d.After(latest) {
			latest = d
		}
		a, ok := customers[o.CustomerID]
		if !ok {
			a = &acc{orders: make(map[string]struct{}), lastDay: d}
			customers[o.CustomerID] = a
		}
		a.orders[o.OrderID] = struct{}{}
		a.monetary = a.monetary.Add(o.Price)
		if d.After(a.lastDay) {
			a.lastDay = d
		}
	}

	ids := make([]string, 0, len(customers))
	for id := range customers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]models.RFMRow, 0, len(ids))
	for _, id := range ids {
		a := customers[id]
		rows = append(rows, models.RFMRow{
			CustomerID: id,
			Recency:    int(latest.Sub(a.lastDay).Hours() / 24),
			Frequency:  len(a.orders),
			Monetary:   a.monetary,
		})
	}
	return rows
}

// ScoreRFM ranks customers on each dimension with tie-averaged ranks,
// rescales the ranks to (0, 5], combines them into rfm_score and assigns a
// segment. The smallest recency gets the highest rank. The input is not modified.
func ScoreRFM(rows []models.RFMRow) []models.RFMRow {
	out := make([]models.RFMRow, len(rows))
	copy(out, rows)
	if len(out) == 0 {
		return out
	}

	rRank := averageRanks(len(out), func(i, j int) int { return cmp.Compare(out[j].Recency, out[i].Recency) })
	fRank := averageRanks(len(out), func(i, j int) int { return cmp.Compare(out[i].Frequency, out[j].Frequency) })
	mRank := averageRanks(len(out), func(i, j int) int { return out[i].Monetary.Cmp(out[j].Monetary) })

	rScore := normalize(rRank, maxScore)
	fScore := normalize(fRank, maxScore)
	mScore := normalize(mRank, maxScore)

	for i := range out {
		out[i].RRank, out[i].FRank, out[i].MRank = rRank[i], fRank[i], mRank[i]
		out[i].RScore, out[i].FScore, out[i].MScore = rScore[i], fScore[i], mScore[i]
		out[i].RFMScore = CombineScores(rScore[i], fScore[i], mScore[i])
		out[i].Segment = Classify(out[i].RFMScore)
	}
	return out
}

// CombineScores weighs the three dimension scores into one rfm_score.
func CombineScores(r, f, m float64) float64 {
	return recencyWeight*r + frequencyWeight*f + monetaryWeight*m
}

// Classify maps an rfm_score to its segment. Each threshold is inclusive.
func Classify(score float64) models.Segment {
	switch {
	case score >= 4:
		return models.SegmentChampion
	case score >= 3:
		return models.SegmentLoyal
	case score >= 2:
		return models.SegmentAtRisk
	default:
		return models.SegmentLost
	}
}

// SegmentCounts counts customers per segment, largest first. Empty segments are omitted.
func SegmentCounts(rows []models.RFMRow) []models.CategoryCount {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = string(r.Segment)
	}
	return valueCounts(labels, []string{
		string(models.SegmentChampion),
		string(models.SegmentLoyal),
		string(models.SegmentAtRisk),
		string(models.SegmentLost),
	})
}

// TopBy returns the n best customers on one metric: lowest recency, or
// highest frequency or monetary. Ties keep the input order.
func TopBy(rows []models.RFMRow, metric string, n int) []models.RFMRow {
	sorted := make([]models.RFMRow, len(rows))
	copy(sorted, rows)

	var less func(i, j int) bool
	switch metric {
	case MetricRecency:
		less = func(i, j int) bool { return sorted[i].Recency < sorted[j].Recency }
	case MetricFrequency:
		less = func(i, j int) bool { return sorted[i].Frequency > sorted[j].Frequency }
	case MetricMonetary:
		less = func(i, j int) bool { return sorted[i].Monetary.GreaterThan(sorted[j].Monetary) }
	default:
		return nil
	}
	sort.SliceStable(sorted, less)

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// valueCounts counts labels, largest count first. Equal counts follow the
// order given by tiers; labels missing from tiers are not counted.
func valueCounts(labels, tiers []string) []models.CategoryCount {
	counts := make(map[string]int, len(tiers))
	for _, l := range labels {
		counts[l]++
	}
	out := make([]models.CategoryCount, 0, len(tiers))
	for _, t := range tiers {
		if c := counts[t]; c > 0 {
			out = append(out, models.CategoryCount{Category: t, Count: c})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
