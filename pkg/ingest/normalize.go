package ingest

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"order-analytics/pkg/models"

	"github.com/shopspring/decimal"
)

// Accepted timestamp layouts, tried in order. Values without a zone are UTC.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	time.DateOnly,
}

var (
	errMissingValue  = errors.New("missing value")
	errNegativePrice = errors.New("negative price")
)

// Normalize parses raw ledger rows into order records sorted by purchase
// timestamp. Ties keep their input order. The first bad row fails the whole
// load with an *models.IngestionError.
func Normalize(rows []models.RawRow) ([]models.OrderRecord, error) {
	out := make([]models.OrderRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := normalizeRow(i, row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PurchasedAt.Before(out[j].PurchasedAt)
	})
	for i := range out {
		out[i].Position = i
	}
	return out, nil
}

func normalizeRow(idx int, row models.RawRow) (models.OrderRecord, error) {
	fail := func(col string, err error) (models.OrderRecord, error) {
		return models.OrderRecord{}, &models.IngestionError{Row: idx, Column: col, Err: err}
	}

	rec := models.OrderRecord{
		OrderID:         strings.TrimSpace(row[models.ColOrderID]),
		CustomerID:      strings.TrimSpace(row[models.ColCustomerID]),
		CustomerState:   strings.TrimSpace(row[models.ColCustomerState]),
		ProductCategory: strings.TrimSpace(row[models.ColProductCategory]),
	}
	if rec.OrderID == "" {
		return fail(models.ColOrderID, errMissingValue)
	}
	if rec.CustomerID == "" {
		return fail(models.ColCustomerID, errMissingValue)
	}

	rawPrice := strings.TrimSpace(row[models.ColPrice])
	if rawPrice == "" {
		return fail(models.ColPrice, errMissingValue)
	}
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return fail(models.ColPrice, fmt.Errorf("parse price %q: %w", rawPrice, err))
	}
	if price.IsNegative() {
		return fail(models.ColPrice, errNegativePrice)
	}
	rec.Price = price

	purchased, err := parseTimestamp(models.ColPurchaseTimestamp, row[models.ColPurchaseTimestamp])
	if err != nil {
		return fail(models.ColPurchaseTimestamp, err)
	}
	if purchased == nil {
		return fail(models.ColPurchaseTimestamp, errMissingValue)
	}
	rec.PurchasedAt = *purchased

	optional := []struct {
		col  string
		dest **time.Time
	}{
		{models.ColApprovedAt, &rec.ApprovedAt},
		{models.ColDeliveredCarrierDate, &rec.DeliveredCarrier},
		{models.ColDeliveredCustomerDate, &rec.DeliveredCustomer},
		{models.ColEstimatedDeliveryDate, &rec.EstimatedDelivery},
	}
	for _, o := range optional {
		ts, err := parseTimestamp(o.col, row[o.col])
		if err != nil {
			return fail(o.col, err)
		}
		*o.dest = ts
	}
	return rec, nil
}

// parseTimestamp returns nil for an absent or blank value.
func parseTimestamp(col, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, &models.MalformedDateError{Column: col, Value: raw}
}
