package models

import (
	"time"

	"github.com/shopspring/decimal"
)

/*
LOAD → raw and normalized order ledger rows.
*/

// Ledger column names as they appear in the source file or table.
const (
	ColOrderID               = "order_id"
	ColCustomerID            = "customer_id"
	ColCustomerState         = "customer_state"
	ColProductCategory       = "product_category"
	ColPrice                 = "price"
	ColPurchaseTimestamp     = "order_purchase_timestamp"
	ColApprovedAt            = "order_approved_at"
	ColDeliveredCarrierDate  = "order_delivered_carrier_date"
	ColDeliveredCustomerDate = "order_delivered_customer_date"
	ColEstimatedDeliveryDate = "order_estimated_delivery_date"
)

// LedgerColumns lists every column the loaders read, in table order.
var LedgerColumns = []string{
	ColOrderID,
	ColCustomerID,
	ColCustomerState,
	ColProductCategory,
	ColPrice,
	ColPurchaseTimestamp,
	ColApprovedAt,
	ColDeliveredCarrierDate,
	ColDeliveredCustomerDate,
	ColEstimatedDeliveryDate,
}

// RawRow is one ledger line as read from a file or table, column name → raw text.
type RawRow map[string]string

// OrderRecord is one normalized order line item. An order with several items
// appears as several records sharing the same OrderID.
type OrderRecord struct {
	Position          int             `json:"position"` // 0-based index after sorting by PurchasedAt
	OrderID           string          `json:"order_id"`
	CustomerID        string          `json:"customer_id"`
	CustomerState     string          `json:"customer_state"`
	ProductCategory   string          `json:"product_category"`
	Price             decimal.Decimal `json:"price"`
	PurchasedAt       time.Time       `json:"order_purchase_timestamp"`
	ApprovedAt        *time.Time      `json:"order_approved_at,omitempty"`
	DeliveredCarrier  *time.Time      `json:"order_delivered_carrier_date,omitempty"`
	DeliveredCustomer *time.Time      `json:"order_delivered_customer_date,omitempty"`
	EstimatedDelivery *time.Time      `json:"order_estimated_delivery_date,omitempty"`
}

// Field returns the value of a grouping column, or "" for columns that are not groupable.
func (o OrderRecord) Field(col string) string {
	switch col {
	case ColOrderID:
		return o.OrderID
	case ColCustomerID:
		return o.CustomerID
	case ColCustomerState:
		return o.CustomerState
	case ColProductCategory:
		return o.ProductCategory
	}
	return ""
}

/*
COMPUTE → derived tables.
*/

// MonthlySummary holds the order volume and revenue of one calendar month.
type MonthlySummary struct {
	Period     string          `json:"period"` // "YYYY-MM"
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// CategoryCount is one row of a group-and-count table (product category or state).
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Segment is the RFM customer class.
type Segment string

const (
	SegmentChampion Segment = "Champion"
	SegmentLoyal    Segment = "Loyal"
	SegmentAtRisk   Segment = "At Risk"
	SegmentLost     Segment = "Lost"
)

// RFMRow is the recency/frequency/monetary profile of one customer.
type RFMRow struct {
	CustomerID string          `json:"customer_id"`
	Recency    int             `json:"recency"` // days since the window's latest purchase date
	Frequency  int             `json:"frequency"`
	Monetary   decimal.Decimal `json:"monetary"`

	RRank    float64 `json:"r_rank"`
	FRank    float64 `json:"f_rank"`
	MRank    float64 `json:"m_rank"`
	RScore   float64 `json:"r_score"`
	FScore   float64 `json:"f_score"`
	MScore   float64 `json:"m_score"`
	RFMScore float64 `json:"rfm_score"`
	Segment  Segment `json:"customer_segment"`
}

// SpendingCategory is the price tier of a single line item.
type SpendingCategory string

const (
	SpendingBudget   SpendingCategory = "Budget"
	SpendingStandard SpendingCategory = "Standard"
	SpendingPremium  SpendingCategory = "Premium"
	SpendingLuxury   SpendingCategory = "Luxury"
)

// SpendingTaggedOrder is an order line with its spending tier.
type SpendingTaggedOrder struct {
	OrderRecord
	SpendingCategory SpendingCategory `json:"spending_category"`
}

// Rollups are the scalar metrics shown next to the tables.
type Rollups struct {
	TotalOrders   int             `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Customers     int             `json:"customers"`
	MeanRecency   float64         `json:"mean_recency"`
	MeanFrequency float64         `json:"mean_frequency"`
	MeanMonetary  float64         `json:"mean_monetary"`
}

/*
CONFIG → parameters of one pipeline run.
*/

// Config holds the parameters passed to the pipeline runner.
type Config struct {
	Start   time.Time // inclusive calendar date; zero means open
	End     time.Time // inclusive calendar date; zero means open
	Verbose bool      // show a progress bar over the pipeline stages
}
