package response

import (
	"time"

	"fenceworks/internal/domain/entities"
)

type DimensionsResponse struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type CostResponse struct {
	MaterialCost  float64 `json:"material_cost"`
	LaborCost     float64 `json:"labor_cost"`
	TransportCost float64 `json:"transport_cost"`
	GrandTotal    float64 `json:"grand_total"`
}

// QuoteResponse always carries grand_total: for records without a
// breakdown it is the legacy valuation and Cost is omitted.
type QuoteResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	ProductID     string             `json:"product_id"`
	ProductName   string             `json:"product_name"`
	Dimensions    DimensionsResponse `json:"dimensions"`
	Area          float64            `json:"area"`
	Cost          *CostResponse      `json:"cost,omitempty"`
	GrandTotal    float64            `json:"grand_total"`
	ClientPriced  bool               `json:"client_priced"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes"`
	Unread        bool               `json:"unread"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	r := QuoteResponse{
		ID:            q.ID,
		CustomerID:    q.CustomerID,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		ProductID:     q.ProductID,
		ProductName:   q.ProductName,
		Dimensions: DimensionsResponse{
			Length: q.Dimensions.Length,
			Width:  q.Dimensions.Width,
			Height: q.Dimensions.Height,
		},
		Area:         money(q.Area),
		GrandTotal:   money(q.EffectiveValuation()),
		ClientPriced: q.ClientPriced,
		Status:       string(q.Status),
		Notes:        q.Notes,
		Unread:       q.Unread,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
	if q.Cost != nil {
		r.Cost = &CostResponse{
			MaterialCost:  money(q.Cost.MaterialCost),
			LaborCost:     money(q.Cost.LaborCost),
			TransportCost: money(q.Cost.TransportCost),
			GrandTotal:    money(q.Cost.GrandTotal),
		}
	}
	return r
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
