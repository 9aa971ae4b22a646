package calculator

import (
	"errors"
	"testing"

	"order-analytics/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBin_Boundaries(t *testing.T) {
	anchor := decimal.NewFromInt(5000)
	tests := []struct {
		price string
		want  models.SpendingCategory
	}{
		{"0", models.SpendingBudget},
		{"49.99", models.SpendingBudget},
		{"50", models.SpendingStandard},
		{"199.99", models.SpendingStandard},
		{"200", models.SpendingPremium},
		{"999.99", models.SpendingPremium},
		{"1000", models.SpendingLuxury},
		{"5000", models.SpendingLuxury},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			got, err := Bin(decimal.RequireFromString(tt.price), anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBin_OutOfRangeFailsClosed(t *testing.T) {
	anchor := decimal.NewFromInt(300)
	for _, p := range []string{"-0.01", "300.01"} {
		_, err := Bin(decimal.RequireFromString(p), anchor)
		var be *models.BinningError
		require.True(t, errors.As(err, &be), p)
		assert.Equal(t, p, be.Price.String())
	}
}

func TestBin_AnchorBelowLuxury(t *testing.T) {
	got, err := Bin(decimal.NewFromInt(300), decimal.NewFromInt(300))
	require.NoError(t, err)
	assert.Equal(t, models.SpendingPremium, got)
}

func TestBinSpending_Ledger(t *testing.T) {
	orders := ledger(t)
	assert.Equal(t, "1500", MaxPrice(orders).String())

	tagged, err := BinSpending(orders)
	require.NoError(t, err)
	require.Len(t, tagged, len(orders))

	want := []models.SpendingCategory{
		models.SpendingBudget,   // 30
		models.SpendingBudget,   // 25
		models.SpendingStandard, // 120
		models.SpendingBudget,   // 49.99
		models.SpendingLuxury,   // 1000
		models.SpendingPremium,  // 200
		models.SpendingBudget,   // 0
		models.SpendingLuxury,   // 1500
	}
	for i, tg := range tagged {
		assert.Equal(t, want[i], tg.SpendingCategory, "line %d", i)
		assert.Equal(t, orders[i].OrderID, tg.OrderID)
	}

	assert.Equal(t, []models.CategoryCount{
		{Category: "Budget", Count: 4},
		{Category: "Luxury", Count: 2},
		{Category: "Standard", Count: 1},
		{Category: "Premium", Count: 1},
	}, SpendingCounts(tagged))
}

func TestBinSpending_Idempotent(t *testing.T) {
	orders := ledger(t)
	anchor := MaxPrice(orders)

	first, err := BinSpendingWithAnchor(orders, anchor)
	require.NoError(t, err)

	again := make([]models.OrderRecord, len(first))
	for i, tg := range first {
		again[i] = tg.OrderRecord
	}
	second, err := BinSpendingWithAnchor(again, anchor)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBinSpending_StaleAnchor(t *testing.T) {
	_, err := BinSpendingWithAnchor(ledger(t), decimal.NewFromInt(1000))
	var be *models.BinningError
	assert.True(t, errors.As(err, &be))
}

func TestBinSpending_Empty(t *testing.T) {
	tagged, err := BinSpending(nil)
	require.NoError(t, err)
	assert.Empty(t, tagged)
	assert.Empty(t, SpendingCounts(tagged))
}
