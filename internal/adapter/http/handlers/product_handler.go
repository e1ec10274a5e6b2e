package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fenceworks/internal/adapter/http/dto/request"
	response "fenceworks/internal/adapter/http/dto/response"
	"fenceworks/internal/usecase"
	"fenceworks/pkg"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// List supports ?category= and ?search= filters.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context(), usecase.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	product, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[product][handler] create failed err=%v", err)
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(product))
}

func (h *ProductHandler) Update(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	id := c.Param("id")
	product, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		log.Printf("[product][handler] update failed product_id=%s err=%v", id, err)
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[product][handler] delete failed product_id=%s err=%v", id, err)
		writeError(c, mapProductError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapProductError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidProductVal):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "A product needs a name and a non-negative base rate", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
