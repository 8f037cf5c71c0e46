package models

// Transaction is one Stripe checkout session as reported by the payment
// collaborator's catalog endpoint. Amounts are in the currency's smallest
// unit (cents).
type Transaction struct {
	ProductID       string `json:"product_id"`
	SessionID       string `json:"session_id"`
	CreatedUnix     int64  `json:"created_unix"`
	CreatedISO      string `json:"created_iso"`
	Quantity        int    `json:"quantity"`
	AmountTotal     int64  `json:"amount_total"`
	Currency        string `json:"currency"`
	PriceID         string `json:"price_id,omitempty"`
	Description     string `json:"description,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	CustomerID      string `json:"customer_id,omitempty"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	PaymentLinkID   string `json:"payment_link_id"`
}

// ProductTotals are the collaborator-computed per-product aggregates.
type ProductTotals struct {
	Orders       int   `json:"orders"`
	Revenue      int64 `json:"revenue"`
	UniqueBuyers int   `json:"unique_buyers"`
}

// ProductSummary groups one product's payment links, totals and transactions.
type ProductSummary struct {
	ProductID    string        `json:"product_id"`
	Links        []string      `json:"links"`
	Totals       ProductTotals `json:"totals"`
	Transactions []Transaction `json:"transactions"`
}

// Catalog is the payment collaborator's catalog-level aggregation response.
type Catalog struct {
	CountProducts int              `json:"count_products"`
	Products      []ProductSummary `json:"products"`
	Meta          CatalogMeta      `json:"_meta"`
}

// CatalogMeta carries the collaborator's bookkeeping for a catalog response.
type CatalogMeta struct {
	TotalPaymentLinks int            `json:"total_payment_links"`
	Filters           CatalogFilters `json:"filters"`
}

// CatalogFilters narrow a catalog request by product activity and creation
// time (unix seconds). Zero values are omitted from the request.
type CatalogFilters struct {
	Active     *bool    `json:"active,omitempty"`
	CreatedGTE int64    `json:"created_gte,omitempty"`
	CreatedLTE int64    `json:"created_lte,omitempty"`
	ProductIDs []string `json:"product_ids,omitempty"`
	MaxPages   int      `json:"maxPages,omitempty"`
}

// PaymentsSummary flattens a catalog into business-level totals. It mirrors
// the aggregation the dashboard consumes: overall revenue and order counts,
// the distinct customer count, per-product revenue, and all transactions
// sorted newest first.
type PaymentsSummary struct {
	TotalRevenue     int64            `json:"total_revenue"`
	TotalOrders      int              `json:"total_orders"`
	TotalProducts    int              `json:"total_products"`
	TotalCustomers   int              `json:"total_customers"`
	RevenueByProduct map[string]int64 `json:"revenue_by_product"`
	Transactions     []Transaction    `json:"transactions"`
}

// Revenue bucketing periods.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// RevenueReport is a chronological series of revenue sums bucketed by period.
// Labels and Data are parallel slices sorted by label ascending.
type RevenueReport struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}
