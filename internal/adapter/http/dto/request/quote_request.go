package request

import (
	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase"
)

type CostRequest struct {
	MaterialCost  float64 `json:"material_cost"`
	LaborCost     float64 `json:"labor_cost"`
	TransportCost float64 `json:"transport_cost"`
	GrandTotal    float64 `json:"grand_total"`
}

type SubmitQuoteRequest struct {
	ProductID string       `json:"product_id" binding:"required"`
	Length    *float64     `json:"length"`
	Width     *float64     `json:"width"`
	Height    *float64     `json:"height"`
	Notes     string       `json:"notes"`
	Cost      *CostRequest `json:"cost"`
}

func (r SubmitQuoteRequest) ToCommand() usecase.SubmitQuoteCommand {
	cmd := usecase.SubmitQuoteCommand{
		ProductID: r.ProductID,
		Length:    r.Length,
		Width:     r.Width,
		Height:    r.Height,
		Notes:     r.Notes,
	}
	if r.Cost != nil {
		cmd.Cost = &entities.Cost{
			MaterialCost:  r.Cost.MaterialCost,
			LaborCost:     r.Cost.LaborCost,
			TransportCost: r.Cost.TransportCost,
			GrandTotal:    r.Cost.GrandTotal,
		}
	}
	return cmd
}

// EditQuoteRequest is the admin edit form. Numeric fields are coerced.
type EditQuoteRequest struct {
	ProductName   *string        `json:"product_name"`
	MaterialCost  FlexibleNumber `json:"material_cost"`
	LaborCost     FlexibleNumber `json:"labor_cost"`
	TransportCost FlexibleNumber `json:"transport_cost"`
	GrandTotal    FlexibleNumber `json:"grand_total"`
	Area          FlexibleNumber `json:"area"`
	Notes         *string        `json:"notes"`
}

func (r EditQuoteRequest) ToPatch() usecase.QuoteDetailsPatch {
	return usecase.QuoteDetailsPatch{
		ProductName:   r.ProductName,
		MaterialCost:  r.MaterialCost.Ptr(),
		LaborCost:     r.LaborCost.Ptr(),
		TransportCost: r.TransportCost.Ptr(),
		GrandTotal:    r.GrandTotal.Ptr(),
		Area:          r.Area.Ptr(),
		Notes:         r.Notes,
	}
}

// QuoteStatusRequest is the body of the generic transition endpoint.
type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
