package calculator

import (
	"testing"
	"time"

	"order-analytics/pkg/models"

	"github.com/shopspring/decimal"
)

// order builds an order line purchased at the given "YYYY-MM-DD HH:MM" time.
func order(t *testing.T, orderID, customerID, at, price string) models.OrderRecord {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", at, time.UTC)
	if err != nil {
		t.Fatalf("bad fixture time %q: %v", at, err)
	}
	return models.OrderRecord{
		OrderID:         orderID,
		CustomerID:      customerID,
		CustomerState:   "SP",
		ProductCategory: "misc",
		Price:           decimal.RequireFromString(price),
		PurchasedAt:     ts,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ledger is a small three-month fixture: four customers, six orders, eight lines.
func ledger(t *testing.T) []models.OrderRecord {
	t.Helper()
	rows := []models.OrderRecord{
		order(t, "o1", "alice", "2024-01-05 10:00", "30"),
		order(t, "o1", "alice", "2024-01-05 10:00", "25"),
		order(t, "o2", "bob", "2024-01-20 12:00", "120"),
		order(t, "o3", "alice", "2024-02-02 09:30", "49.99"),
		order(t, "o4", "carol", "2024-02-14 18:00", "1000"),
		order(t, "o5", "dave", "2024-03-01 08:00", "200"),
		order(t, "o5", "dave", "2024-03-01 08:00", "0"),
		order(t, "o6", "bob", "2024-03-10 23:59", "1500"),
	}
	states := []string{"SP", "SP", "RJ", "SP", "MG", "RJ", "RJ", "RJ"}
	categories := []string{"toys", "books", "toys", "books", "tech", "toys", "garden", "tech"}
	for i := range rows {
		rows[i].Position = i
		rows[i].CustomerState = states[i]
		rows[i].ProductCategory = categories[i]
	}
	return rows
}
