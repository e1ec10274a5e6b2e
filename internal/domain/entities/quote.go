package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a customer quote.
//
// Pending is the initial state. Approved and Rejected can both be reset back
// to Pending; there is no direct Approved <-> Rejected move.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "Pending"
	QuoteStatusApproved QuoteStatus = "Approved"
	QuoteStatusRejected QuoteStatus = "Rejected"
)

// ParseQuoteStatus resolves a status name case-insensitively.
func ParseQuoteStatus(s string) (QuoteStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return QuoteStatusPending, true
	case "approved":
		return QuoteStatusApproved, true
	case "rejected":
		return QuoteStatusRejected, true
	}
	return "", false
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle step. Staying in the same state is always allowed.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	if s == target {
		return true
	}
	switch s {
	case QuoteStatusPending:
		return target == QuoteStatusApproved || target == QuoteStatusRejected
	case QuoteStatusApproved, QuoteStatusRejected:
		return target == QuoteStatusPending
	}
	// Unknown stored status: only a reset is meaningful.
	return target == QuoteStatusPending
}

// Dimensions of a rectangular enclosure, all in feet.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Cost is the itemized valuation of a quote.
// GrandTotal always equals MaterialCost + LaborCost + TransportCost.
type Cost struct {
	MaterialCost  float64 `json:"material_cost"`
	LaborCost     float64 `json:"labor_cost"`
	TransportCost float64 `json:"transport_cost"`
	GrandTotal    float64 `json:"grand_total"`
}

// Sum returns the component total rounded to cents. The addition is done in
// decimal so 100.1 + 200.2 is 300.3, not 300.29999999999995.
func (c Cost) Sum() float64 {
	return c.sum().InexactFloat64()
}

// Balanced reports whether GrandTotal matches the component sum to the cent.
func (c Cost) Balanced() bool {
	return c.sum().Equal(decimal.NewFromFloat(c.GrandTotal).Round(2))
}

func (c Cost) sum() decimal.Decimal {
	return decimal.NewFromFloat(c.MaterialCost).
		Add(decimal.NewFromFloat(c.LaborCost)).
		Add(decimal.NewFromFloat(c.TransportCost)).
		Round(2)
}

// Quote is a customer's cost-estimate request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Records written before the itemized breakdown existed carry only one of
// the legacy valuation fields; Cost is nil for them.
type Quote struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customer_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	ProductID     string      `json:"product_id"`
	ProductName   string      `json:"product_name"`
	Dimensions    Dimensions  `json:"dimensions"`
	Area          float64     `json:"area"`
	Cost          *Cost       `json:"cost,omitempty"`
	// ClientPriced is set when the submitter supplied Cost instead of the
	// estimator pricing it.
	ClientPriced  bool        `json:"client_priced"`
	Status        QuoteStatus `json:"status"`
	Notes         string      `json:"notes"`
	Unread        bool        `json:"unread"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	LegacyEstimatedCost *float64 `json:"estimated_cost,omitempty"`
	LegacyTotalCost     *float64 `json:"total_cost,omitempty"`
}

// EffectiveValuation resolves the figure used to gate approval:
// grand total, then the legacy estimate, then the legacy total, then zero.
func (q Quote) EffectiveValuation() float64 {
	switch {
	case q.Cost != nil:
		return q.Cost.GrandTotal
	case q.LegacyEstimatedCost != nil:
		return *q.LegacyEstimatedCost
	case q.LegacyTotalCost != nil:
		return *q.LegacyTotalCost
	}
	return 0
}
