package response

import (
	"fenceworks/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

func money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

type EstimateResponse struct {
	Area          float64 `json:"area"`
	MaterialCost  float64 `json:"material_cost"`
	LaborCost     float64 `json:"labor_cost"`
	TransportCost float64 `json:"transport_cost"`
	GrandTotal    float64 `json:"grand_total"`
}

func FromBreakdown(b pricing.Breakdown) EstimateResponse {
	r := b.Rounded()
	return EstimateResponse{
		Area:          r.Area,
		MaterialCost:  r.MaterialCost,
		LaborCost:     r.LaborCost,
		TransportCost: r.TransportCost,
		GrandTotal:    r.GrandTotal,
	}
}
