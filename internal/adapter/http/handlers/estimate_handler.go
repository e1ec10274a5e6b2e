package handlers

import (
	"errors"
	"net/http"

	request "fenceworks/internal/adapter/http/dto/request"
	response "fenceworks/internal/adapter/http/dto/response"
	"fenceworks/internal/domain/pricing"
	"fenceworks/internal/usecase"
	"fenceworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler previews a price without saving a quote.
type EstimateHandler struct {
	products usecase.IProductUseCase
}

func NewEstimateHandler(products usecase.IProductUseCase) *EstimateHandler {
	return &EstimateHandler{products: products}
}

// Calculate prices the body's dimensions at the explicit rate, or at the
// product's base rate when only product_id is given.
func (h *EstimateHandler) Calculate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload)
		return
	}

	rate := payload.Rate
	if rate == nil {
		id := payload.ResolveProductID()
		if id == "" {
			writeError(c, mapEstimateError(&pricing.ValidationError{Fields: []string{"rate"}}))
			return
		}
		product, err := h.products.GetByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, mapEstimateError(err))
			return
		}
		rate = &product.BaseRate
	}

	breakdown, err := pricing.EstimateInput(pricing.Input{
		Length: payload.Length,
		Width:  payload.Width,
		Height: payload.Height,
		Rate:   rate,
	})
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

func mapEstimateError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return errInvalidEstimatePayload
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
