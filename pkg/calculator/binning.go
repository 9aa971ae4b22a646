package calculator

import (
	"order-analytics/pkg/models"

	"github.com/shopspring/decimal"
)

// spendingTiers holds the lower edge of each tier, ascending. A price equal
// to an edge belongs to that tier. The top tier ends at the anchor price.
var spendingTiers = []struct {
	lower    decimal.Decimal
	category models.SpendingCategory
}{
	{decimal.Zero, models.SpendingBudget},
	{decimal.NewFromInt(50), models.SpendingStandard},
	{decimal.NewFromInt(200), models.SpendingPremium},
	{decimal.NewFromInt(1000), models.SpendingLuxury},
}

// MaxPrice returns the highest price in orders, or zero when there are none.
func MaxPrice(orders []models.OrderRecord) decimal.Decimal {
	top := decimal.Zero
	for _, o := range orders {
		if o.Price.GreaterThan(top) {
			top = o.Price
		}
	}
	return top
}

// Bin classifies one price against the [0, anchor] range.
func Bin(price, anchor decimal.Decimal) (models.SpendingCategory, error) {
	if price.IsNegative() || price.GreaterThan(anchor) {
		return "", &models.BinningError{Price: price, Anchor: anchor}
	}
	for i := len(spendingTiers) - 1; i > 0; i-- {
		if price.GreaterThanOrEqual(spendingTiers[i].lower) {
			return spendingTiers[i].category, nil
		}
	}
	return spendingTiers[0].category, nil
}

// BinSpending tags every order line with its spending tier, anchoring the top
// tier at the highest price in orders.
func BinSpending(orders []models.OrderRecord) ([]models.SpendingTaggedOrder, error) {
	return BinSpendingWithAnchor(orders, MaxPrice(orders))
}

// BinSpendingWithAnchor tags order lines against a caller-supplied anchor.
func BinSpendingWithAnchor(orders []models.OrderRecord, anchor decimal.Decimal) ([]models.SpendingTaggedOrder, error) {
	out := make([]models.SpendingTaggedOrder, 0, len(orders))
	for _, o := range orders {
		cat, err := Bin(o.Price, anchor)
		if err != nil {
			return nil, err
		}
		out = append(out, models.SpendingTaggedOrder{OrderRecord: o, SpendingCategory: cat})
	}
	return out, nil
}

// SpendingCounts counts order lines per tier, largest first. Empty tiers are omitted.
func SpendingCounts(tagged []models.SpendingTaggedOrder) []models.CategoryCount {
	labels := make([]string, len(tagged))
	for i, t := range tagged {
		labels[i] = string(t.SpendingCategory)
	}
	tiers := make([]string, len(spendingTiers))
	for i, t := range spendingTiers {
		tiers[i] = string(t.category)
	}
	return valueCounts(labels, tiers)
}
