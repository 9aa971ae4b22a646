package calculator

import (
	"sort"

	"order-analytics/pkg/models"
)

// CategoryTable is a group-and-count result sorted by count descending.
// Groups with equal counts keep the order in which they were first seen.
type CategoryTable []models.CategoryCount

// CountDistinct groups orders by the groupBy column and counts the distinct
// values of the distinct column within each group. Product rankings use
// (product_category, order_id); customer density uses (customer_state, customer_id).
func CountDistinct(orders []models.OrderRecord, groupBy, distinct string) CategoryTable {
	seen := make(map[string]map[string]struct{})
	var order []string
	for _, o := range orders {
		key := o.Field(groupBy)
		ids, ok := seen[key]
		if !ok {
			ids = make(map[string]struct{})
			seen[key] = ids
			order = append(order, key)
		}
		ids[o.Field(distinct)] = struct{}{}
	}

	table := make(CategoryTable, 0, len(order))
	for _, key := range order {
		table = append(table, models.CategoryCount{Category: key, Count: len(seen[key])})
	}
	sort.SliceStable(table, func(i, j int) bool { return table[i].Count > table[j].Count })
	return table
}

// Top returns the first n rows (all rows when n <= 0 or n exceeds the table).
func (t CategoryTable) Top(n int) []models.CategoryCount {
	return head(t, n)
}

// Worst re-sorts the table by ascending count and returns its first n rows.
// Equal counts keep their relative order from the descending table.
func (t CategoryTable) Worst(n int) []models.CategoryCount {
	asc := make([]models.CategoryCount, len(t))
	copy(asc, t)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].Count < asc[j].Count })
	return head(asc, n)
}

func head(rows []models.CategoryCount, n int) []models.CategoryCount {
	if n <= 0 || n > len(rows) {
		n = len(rows)
	}
	out := make([]models.CategoryCount, n)
	copy(out, rows[:n])
	return out
}
