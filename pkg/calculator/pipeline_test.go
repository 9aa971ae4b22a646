package calculator

import (
	"errors"
	"testing"

	"order-analytics/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FullWindow(t *testing.T) {
	rep, err := Run(ledger(t), models.Config{})
	require.NoError(t, err)

	assert.Len(t, rep.Monthly, 3)
	assert.Len(t, rep.Products, 4)
	assert.Len(t, rep.States, 3)
	assert.Len(t, rep.RFM, 4)
	assert.Len(t, rep.Spending, 8)
	assert.Empty(t, rep.Warnings)

	assert.Equal(t, 6, rep.Rollups.TotalOrders)
	assert.Equal(t, "2924.99", rep.Rollups.TotalRevenue.String())
	assert.Equal(t, 4, rep.Rollups.Customers)
	assert.InDelta(t, 17.75, rep.Rollups.MeanRecency, eps)
	assert.InDelta(t, 1.5, rep.Rollups.MeanFrequency, eps)
	assert.InDelta(t, 731.2475, rep.Rollups.MeanMonetary, 1e-6)

	assert.Equal(t, "toys", rep.Views.BestProducts[0].Category)
	assert.Equal(t, "garden", rep.Views.WorstProducts[0].Category)
	assert.Equal(t, "RJ", rep.Views.TopStates[0].Category)
	assert.Equal(t, "At Risk", rep.Views.Segments[0].Category)
	assert.Equal(t, "Budget", rep.Views.SpendingTiers[0].Category)
	assert.Equal(t, "bob", rep.Views.TopRecency[0].CustomerID)
	assert.Equal(t, "bob", rep.Views.TopMonetary[0].CustomerID)
	assert.Len(t, rep.Views.TopFrequency, 4)
}

func TestRun_AnchorsFollowTheWindow(t *testing.T) {
	rep, err := Run(ledger(t), models.Config{Start: date(2024, 1, 1), End: date(2024, 2, 2)})
	require.NoError(t, err)

	// the window ends on alice's second order, so she is the most recent buyer
	by := rfmByID(rep.RFM)
	assert.Equal(t, 0, by["alice"].Recency)
	assert.Equal(t, 13, by["bob"].Recency)
	_, hasCarol := by["carol"]
	assert.False(t, hasCarol)

	// top price in the window is 120, so nothing is Luxury and no binning error
	for _, tg := range rep.Spending {
		assert.NotEqual(t, models.SpendingLuxury, tg.SpendingCategory)
	}
	assert.Equal(t, 3, rep.Rollups.TotalOrders)
}

func TestRun_SingleDaySingleOrder(t *testing.T) {
	rep, err := Run(ledger(t), models.Config{Start: date(2024, 2, 14), End: date(2024, 2, 14)})
	require.NoError(t, err)

	require.Len(t, rep.Monthly, 1)
	assert.Equal(t, "2024-02", rep.Monthly[0].Period)
	assert.Equal(t, 1, rep.Monthly[0].OrderCount)

	require.Len(t, rep.RFM, 1)
	assert.Equal(t, "carol", rep.RFM[0].CustomerID)
	assert.Equal(t, 0, rep.RFM[0].Recency)
	assert.Equal(t, models.SegmentChampion, rep.RFM[0].Segment)

	require.Len(t, rep.Spending, 1)
	assert.Equal(t, models.SpendingLuxury, rep.Spending[0].SpendingCategory)
}

func TestRun_EmptyWindow(t *testing.T) {
	rep, err := Run(ledger(t), models.Config{Start: date(2030, 1, 1)})
	require.NoError(t, err)

	assert.Empty(t, rep.Monthly)
	assert.Empty(t, rep.Products)
	assert.Empty(t, rep.States)
	assert.Empty(t, rep.RFM)
	assert.Empty(t, rep.Spending)
	assert.Equal(t, 0, rep.Rollups.TotalOrders)
	assert.True(t, rep.Rollups.TotalRevenue.IsZero())
	assert.Zero(t, rep.Rollups.MeanMonetary)

	require.Len(t, rep.Warnings, 1)
	assert.True(t, errors.Is(rep.Warnings[0], models.ErrEmptyDataset))
}

func TestRun_ReversedRange(t *testing.T) {
	rep, err := Run(ledger(t), models.Config{Start: date(2024, 3, 1), End: date(2024, 1, 1)})
	assert.Nil(t, rep)

	var ire *models.InvalidRangeError
	assert.True(t, errors.As(err, &ire))
}

func TestRun_DoesNotModifyInput(t *testing.T) {
	orders := ledger(t)
	before := make([]models.OrderRecord, len(orders))
	copy(before, orders)

	_, err := Run(orders, models.Config{Start: date(2024, 2, 1)})
	require.NoError(t, err)
	assert.Equal(t, before, orders)
}
