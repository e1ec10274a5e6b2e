package interfaces

import (
	"context"
	"errors"

	"fenceworks/internal/domain/entities"
)

// ErrQuoteStatusConflict reports a status write refused because the stored
// quote no longer matched what the caller read.
var ErrQuoteStatusConflict = errors.New("quote status conflict")

// QuoteDetailsUpdate lists the quote fields an admin may change. Nil fields
// are left untouched.
type QuoteDetailsUpdate struct {
	ProductName *string
	Area        *float64
	Cost        *entities.Cost
	Notes       *string
}

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Lookups return a zero Quote (ID == "") when nothing matches, so callers
// decide what "not found" means.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	// UpdateStatus is a compare-and-set on status. See ErrQuoteStatusConflict.
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error)
	UpdateDetails(ctx context.Context, id string, upd QuoteDetailsUpdate) (entities.Quote, error)
	MarkRead(ctx context.Context, id string) (entities.Quote, error)
}
