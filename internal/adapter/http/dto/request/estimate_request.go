package request

import "strings"

// EstimateRequest prices a fence without saving anything. Either a product
// id or an explicit rate is required.
type EstimateRequest struct {
	ProductID string   `json:"product_id"`
	Rate      *float64 `json:"rate"`
	Length    *float64 `json:"length"`
	Width     *float64 `json:"width"`
	Height    *float64 `json:"height"`
}

func (r EstimateRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}
