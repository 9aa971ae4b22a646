package calculator

import (
	"fmt"
	"time"

	"order-analytics/pkg/models"
)

// ParseDate parses a "YYYY-MM-DD" calendar date. An empty string gives the zero time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD (ex: 2024-03-01): %w", err)
	}
	return d, nil
}

// dayOf truncates t to its calendar date, expressed as UTC midnight.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// formatMonth gives the "YYYY-MM" period key of t.
func formatMonth(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// FilterByDate keeps the orders whose purchase date lies in [start, end],
// both inclusive. A zero bound leaves that side open. The input is not modified.
func FilterByDate(orders []models.OrderRecord, start, end time.Time) ([]models.OrderRecord, error) {
	if !start.IsZero() {
		start = dayOf(start)
	}
	if !end.IsZero() {
		end = dayOf(end)
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return nil, &models.InvalidRangeError{Start: start, End: end}
	}

	out := make([]models.OrderRecord, 0, len(orders))
	for _, o := range orders {
		d := dayOf(o.PurchasedAt)
		if !start.IsZero() && d.Before(start) {
			continue
		}
		if !end.IsZero() && d.After(end) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// DateBounds returns the first and last purchase dates of orders.
func DateBounds(orders []models.OrderRecord) (first, last time.Time, ok bool) {
	for i, o := range orders {
		d := dayOf(o.PurchasedAt)
		if i == 0 || d.Before(first) {
			first = d
		}
		if i == 0 || d.After(last) {
			last = d
		}
	}
	return first, last, len(orders) > 0
}
