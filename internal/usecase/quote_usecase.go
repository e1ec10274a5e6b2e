package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/domain/pricing"
	"fenceworks/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteNotFound            = errors.New("quote not found")
	ErrInvalidQuoteID           = errors.New("invalid quote id")
	ErrInvalidQuoteStatus       = errors.New("invalid quote status")
	ErrInvalidTransition        = errors.New("invalid quote status transition")
	ErrZeroValuation            = errors.New("quote valuation is zero")
	ErrInvalidQuoteCost         = errors.New("invalid quote cost")
	ErrSubscriptionsUnavailable = errors.New("change subscriptions unavailable")
)

// SubmitQuoteCommand is a customer's quote request. Dimensions are pointers
// so a missing value is told apart from zero. Cost is optional: when nil the
// estimator prices the request from the product's base rate.
type SubmitQuoteCommand struct {
	ProductID string
	Length    *float64
	Width     *float64
	Height    *float64
	Cost      *entities.Cost
	Notes     string
}

// QuoteDetailsPatch is an admin edit. Nil fields are left as they are.
type QuoteDetailsPatch struct {
	ProductName   *string
	MaterialCost  *float64
	LaborCost     *float64
	TransportCost *float64
	GrandTotal    *float64
	Area          *float64
	Notes         *string
}

// QuoteScope selects the quotes a subscription watches. An empty CustomerID
// watches every quote.
type QuoteScope struct {
	CustomerID string
}

// IQuoteUseCase owns the quote status field and every write to quotes.
type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, session entities.Session, cmd SubmitQuoteCommand) (entities.Quote, error)
	Transition(ctx context.Context, id string, target entities.QuoteStatus) (entities.Quote, error)
	Approve(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
	Reset(ctx context.Context, id string) (entities.Quote, error)
	EditDetails(ctx context.Context, id string, patch QuoteDetailsPatch) (entities.Quote, error)
	MarkRead(ctx context.Context, id string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetForSession(ctx context.Context, session entities.Session, id string) (entities.Quote, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	Subscribe(ctx context.Context, scope QuoteScope) (<-chan []entities.Quote, func(), error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	products interfaces.IProductRepository
	notifier interfaces.IChangeNotifier
	now      func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, products interfaces.IProductRepository, notifier interfaces.IChangeNotifier) *QuoteUseCase {
	return &QuoteUseCase{
		repo:     repo,
		products: products,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, session entities.Session, cmd SubmitQuoteCommand) (entities.Quote, error) {
	if session.IsZero() {
		return entities.Quote{}, ErrInvalidSession
	}
	productID := strings.TrimSpace(cmd.ProductID)
	if productID == "" {
		return entities.Quote{}, ErrInvalidProductID
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.Quote{}, storeErr("get product", err)
	}
	if product.ID == "" {
		return entities.Quote{}, ErrProductNotFound
	}

	in := pricing.Input{Length: cmd.Length, Width: cmd.Width, Height: cmd.Height, Rate: &product.BaseRate}
	estimated, err := pricing.EstimateInput(in)
	if err != nil {
		return entities.Quote{}, err
	}

	// A supplied cost is kept as sent, even zero, and the quote is flagged so
	// an admin can tell it from an estimator price.
	cost := estimated.Cost
	clientPriced := cmd.Cost != nil
	if clientPriced {
		if !validCost(*cmd.Cost) || !cmd.Cost.Balanced() {
			return entities.Quote{}, ErrInvalidQuoteCost
		}
		cost = *cmd.Cost
		if !sameCents(cost.GrandTotal, estimated.Cost.GrandTotal) {
			log.Printf("[quote][usecase] client price differs customer_id=%s client_total=%.2f estimated_total=%.2f",
				session.UserID, cost.GrandTotal, estimated.Cost.GrandTotal)
		}
	}

	now := u.now()
	q := entities.Quote{
		ID:            uuid.NewString(),
		CustomerID:    session.UserID,
		CustomerName:  session.DisplayName,
		CustomerEmail: session.Email,
		ProductID:     product.ID,
		ProductName:   product.Name,
		Dimensions:    entities.Dimensions{Length: *cmd.Length, Width: *cmd.Width, Height: *cmd.Height},
		Area:          estimated.Area,
		Cost:          &cost,
		ClientPriced:  clientPriced,
		Status:        entities.QuoteStatusPending,
		Notes:         strings.TrimSpace(cmd.Notes),
		Unread:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed customer_id=%s err=%v", session.UserID, err)
		return entities.Quote{}, storeErr("create quote", err)
	}
	log.Printf("[quote][usecase] submitted quote_id=%s customer_id=%s grand_total=%.2f client_priced=%t", created.ID, created.CustomerID, cost.GrandTotal, clientPriced)
	u.notify(interfaces.CollectionQuotes)
	return created, nil
}

func (u *QuoteUseCase) Approve(ctx context.Context, id string) (entities.Quote, error) {
	return u.Transition(ctx, id, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.Transition(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) Reset(ctx context.Context, id string) (entities.Quote, error) {
	return u.Transition(ctx, id, entities.QuoteStatusPending)
}

// Transition moves a quote to target. Approval is refused while the
// effective valuation is exactly zero. Only status and updated_at change.
// The write only lands if the stored status is still the one read here, and
// for approval only if the stored valuation is still non-zero.
func (u *QuoteUseCase) Transition(ctx context.Context, id string, target entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if _, ok := entities.ParseQuoteStatus(string(target)); !ok {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, storeErr("get quote", err)
	}
	if current.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if !current.Status.CanTransitionTo(target) {
		return entities.Quote{}, ErrInvalidTransition
	}
	if target == entities.QuoteStatusApproved && current.EffectiveValuation() == 0 {
		log.Printf("[quote][usecase] approval refused quote_id=%s reason=zero-valuation", id)
		return entities.Quote{}, ErrZeroValuation
	}

	updated, err := u.repo.UpdateStatus(ctx, id, current.Status, target)
	if errors.Is(err, interfaces.ErrQuoteStatusConflict) {
		return entities.Quote{}, u.explainConflict(ctx, id, target)
	}
	if err != nil {
		log.Printf("[quote][usecase] status update failed quote_id=%s target=%s err=%v", id, target, err)
		return entities.Quote{}, storeErr("update quote status", err)
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] transition quote_id=%s from=%s to=%s", id, current.Status, updated.Status)
	u.notify(interfaces.CollectionQuotes)
	return updated, nil
}

// explainConflict re-reads a quote whose status write was refused and names
// the reason: it is gone, its valuation dropped to zero, or its status moved
// somewhere target cannot be reached from.
func (u *QuoteUseCase) explainConflict(ctx context.Context, id string, target entities.QuoteStatus) error {
	latest, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return storeErr("get quote", err)
	}
	log.Printf("[quote][usecase] status write conflict quote_id=%s target=%s status=%s", id, target, latest.Status)
	switch {
	case latest.ID == "":
		return ErrQuoteNotFound
	case target == entities.QuoteStatusApproved && latest.EffectiveValuation() == 0:
		return ErrZeroValuation
	}
	return ErrInvalidTransition
}

// EditDetails applies an admin edit. Nothing is re-estimated: when the area
// changes the caller supplies the new cost explicitly.
func (u *QuoteUseCase) EditDetails(ctx context.Context, id string, patch QuoteDetailsPatch) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if patch.Area != nil && *patch.Area < 0 {
		return entities.Quote{}, ErrInvalidQuoteCost
	}

	upd := interfaces.QuoteDetailsUpdate{
		ProductName: trimmedPtr(patch.ProductName),
		Area:        patch.Area,
		Notes:       trimmedPtr(patch.Notes),
	}

	if patch.hasCost() {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Quote{}, storeErr("get quote", err)
		}
		if current.ID == "" {
			return entities.Quote{}, ErrQuoteNotFound
		}
		cost, err := resolveCost(current.Cost, patch)
		if err != nil {
			return entities.Quote{}, err
		}
		upd.Cost = &cost
	}

	updated, err := u.repo.UpdateDetails(ctx, id, upd)
	if err != nil {
		log.Printf("[quote][usecase] edit failed quote_id=%s err=%v", id, err)
		return entities.Quote{}, storeErr("update quote details", err)
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] edited quote_id=%s", id)
	u.notify(interfaces.CollectionQuotes)
	return updated, nil
}

func (u *QuoteUseCase) MarkRead(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	updated, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.Quote{}, storeErr("mark quote read", err)
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.notify(interfaces.CollectionQuotes)
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, storeErr("get quote", err)
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// GetForSession hides other customers' quotes behind ErrQuoteNotFound.
func (u *QuoteUseCase) GetForSession(ctx context.Context, session entities.Session, id string) (entities.Quote, error) {
	if session.IsZero() {
		return entities.Quote{}, ErrInvalidSession
	}
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !session.IsAdmin() && q.CustomerID != session.UserID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Quote, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidSession
	}
	return u.list(ctx, QuoteScope{CustomerID: customerID})
}

func (u *QuoteUseCase) ListAll(ctx context.Context) ([]entities.Quote, error) {
	return u.list(ctx, QuoteScope{})
}

// Subscribe delivers the current snapshot of the scope and then a fresh one
// after every committed quote write. The channel holds at most one snapshot;
// an unread snapshot is replaced by a newer one. The channel is closed when
// ctx ends or cancel is called.
func (u *QuoteUseCase) Subscribe(ctx context.Context, scope QuoteScope) (<-chan []entities.Quote, func(), error) {
	if u.notifier == nil {
		return nil, nil, ErrSubscriptionsUnavailable
	}

	// Subscribe before the first read so no write slips between them.
	signals, unsubscribe := u.notifier.Subscribe(interfaces.CollectionQuotes)
	first, err := u.list(ctx, scope)
	if err != nil {
		unsubscribe()
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan []entities.Quote, 1)
	out <- first

	go func() {
		defer close(out)
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
				snap, err := u.list(ctx, scope)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					log.Printf("[quote][usecase] subscription refresh failed customer_id=%q err=%v", scope.CustomerID, err)
					continue
				}
				replaceLatest(out, snap)
			}
		}
	}()

	return out, cancel, nil
}

func (u *QuoteUseCase) list(ctx context.Context, scope QuoteScope) ([]entities.Quote, error) {
	var (
		quotes []entities.Quote
		err    error
	)
	if scope.CustomerID != "" {
		quotes, err = u.repo.ListByCustomerID(ctx, scope.CustomerID)
	} else {
		quotes, err = u.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, storeErr("list quotes", err)
	}
	sortQuotesNewestFirst(quotes)
	return quotes, nil
}

func (u *QuoteUseCase) notify(collection string) {
	if u.notifier != nil {
		u.notifier.Notify(collection)
	}
}

// sortQuotesNewestFirst orders in memory after the fetch; the store does not
// return items by creation time. Fine for the list sizes involved.
func sortQuotesNewestFirst(quotes []entities.Quote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
}

func replaceLatest[T any](out chan T, v T) {
	for {
		select {
		case out <- v:
			return
		default:
			select {
			case <-out:
			default:
			}
		}
	}
}

func (p QuoteDetailsPatch) hasCost() bool {
	return p.MaterialCost != nil || p.LaborCost != nil || p.TransportCost != nil || p.GrandTotal != nil
}

// resolveCost merges a patch into the current cost keeping the grand total
// equal to the component sum. With components in the patch the total follows
// them; with only a total, material cost takes up the difference.
func resolveCost(current *entities.Cost, p QuoteDetailsPatch) (entities.Cost, error) {
	var c entities.Cost
	if current != nil {
		c = *current
	}

	components := p.MaterialCost != nil || p.LaborCost != nil || p.TransportCost != nil
	if components {
		if p.MaterialCost != nil {
			c.MaterialCost = *p.MaterialCost
		}
		if p.LaborCost != nil {
			c.LaborCost = *p.LaborCost
		}
		if p.TransportCost != nil {
			c.TransportCost = *p.TransportCost
		}
		c.GrandTotal = c.Sum()
		if p.GrandTotal != nil && !sameCents(*p.GrandTotal, c.GrandTotal) {
			return entities.Cost{}, ErrInvalidQuoteCost
		}
	} else {
		c.MaterialCost = decimal.NewFromFloat(*p.GrandTotal).
			Sub(decimal.NewFromFloat(c.LaborCost)).
			Sub(decimal.NewFromFloat(c.TransportCost)).
			Round(2).
			InexactFloat64()
		c.GrandTotal = c.Sum()
	}

	if !validCost(c) {
		return entities.Cost{}, ErrInvalidQuoteCost
	}
	return c, nil
}

func sameCents(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(2).Equal(decimal.NewFromFloat(b).Round(2))
}

func validCost(c entities.Cost) bool {
	return c.MaterialCost >= 0 && c.LaborCost >= 0 && c.TransportCost >= 0 && c.GrandTotal >= 0
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
