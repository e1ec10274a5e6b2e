package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "fenceworks/internal/adapter/http/dto/request"
	response "fenceworks/internal/adapter/http/dto/response"
	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase"
	"fenceworks/pkg"

	"github.com/gin-gonic/gin"
)

const quotesEvent = "quotes"

// QuoteHandler serves both the customer and the admin quote routes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SubmitQuote creates a Pending quote for the signed-in customer.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	quote, err := h.usecase.SubmitQuote(c.Request.Context(), session, payload.ToCommand())
	if err != nil {
		log.Printf("[quote][handler] submit failed customer_id=%s err=%v", session.UserID, err)
		writeError(c, mapQuoteError(err))
		return
	}
	log.Printf("[quote][handler] submit success quote_id=%s customer_id=%s", quote.ID, session.UserID)

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) ListMine(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	quotes, err := h.usecase.ListByCustomer(c.Request.Context(), session.UserID)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetMine(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	quote, err := h.usecase.GetForSession(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// StreamMine pushes the customer's quote list as server-sent events.
func (h *QuoteHandler) StreamMine(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	h.stream(c, usecase.QuoteScope{CustomerID: session.UserID})
}

func (h *QuoteHandler) ListAll(c *gin.Context) {
	quotes, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) Get(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) StreamAll(c *gin.Context) {
	h.stream(c, usecase.QuoteScope{})
}

// EditDetails applies an admin edit. Numeric fields accept numbers or
// numeric strings.
func (h *QuoteHandler) EditDetails(c *gin.Context) {
	var payload request.EditQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	id := c.Param("id")
	quote, err := h.usecase.EditDetails(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		log.Printf("[quote][handler] edit failed quote_id=%s err=%v", id, err)
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) Approve(c *gin.Context) {
	h.updateQuote(c, "approve", h.usecase.Approve)
}

func (h *QuoteHandler) Reject(c *gin.Context) {
	h.updateQuote(c, "reject", h.usecase.Reject)
}

func (h *QuoteHandler) Reset(c *gin.Context) {
	h.updateQuote(c, "reset", h.usecase.Reset)
}

func (h *QuoteHandler) MarkRead(c *gin.Context) {
	h.updateQuote(c, "read", h.usecase.MarkRead)
}

// Transition moves a quote to the status named in the body.
func (h *QuoteHandler) Transition(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	target, ok := entities.ParseQuoteStatus(payload.Status)
	if !ok {
		writeError(c, mapQuoteError(usecase.ErrInvalidQuoteStatus))
		return
	}
	h.updateQuote(c, "transition", func(ctx context.Context, id string) (entities.Quote, error) {
		return h.usecase.Transition(ctx, id, target)
	})
}

func (h *QuoteHandler) updateQuote(
	c *gin.Context,
	action string,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	id := c.Param("id")
	quote, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quote][handler] %s failed quote_id=%s err=%v", action, id, err)
		writeError(c, mapQuoteError(err))
		return
	}
	log.Printf("[quote][handler] %s success quote_id=%s status=%s", action, quote.ID, quote.Status)
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) stream(c *gin.Context, scope usecase.QuoteScope) {
	ctx := c.Request.Context()
	snapshots, cancel, err := h.usecase.Subscribe(ctx, scope)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			c.SSEvent(quotesEvent, response.FromQuotes(snap))
			c.Writer.Flush()
		}
	}
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidQuoteCost):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_COST", "Costs must be non-negative and the grand total must equal material, labor and transport combined", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrZeroValuation):
		return pkg.NewDomainErrorSimple("ZERO_VALUATION", "Cannot approve a quote with a total of 0. Set the quote value before approving.", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "This status change is not allowed. Reset the quote to Pending first.", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubscriptionsUnavailable):
		return pkg.NewDomainErrorSimple("LIVE_UPDATES_UNAVAILABLE", "Live updates are not available", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
