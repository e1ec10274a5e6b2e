package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/domain/pricing"
	"fenceworks/internal/infrastructure/events"
	"fenceworks/internal/usecase/interfaces"
	mock_interfaces "fenceworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func f64(v float64) *float64 { return &v }
func str(v string) *string    { return &v }

var customer = entities.Session{UserID: "cust-1", Role: entities.RoleCustomer, Email: "ann@example.com", DisplayName: "Ann"}

type quoteMocks struct {
	repo     *mock_interfaces.MockIQuoteRepository
	products *mock_interfaces.MockIProductRepository
	notifier *mock_interfaces.MockIChangeNotifier
}

func newQuoteUseCase(t *testing.T) (*QuoteUseCase, quoteMocks) {
	ctrl := gomock.NewController(t)
	m := quoteMocks{
		repo:     mock_interfaces.NewMockIQuoteRepository(ctrl),
		products: mock_interfaces.NewMockIProductRepository(ctrl),
		notifier: mock_interfaces.NewMockIChangeNotifier(ctrl),
	}
	return NewQuoteUseCase(m.repo, m.products, m.notifier), m
}

func quoteWithTotal(id string, status entities.QuoteStatus, total float64) entities.Quote {
	return entities.Quote{
		ID:     id,
		Status: status,
		Cost:   &entities.Cost{MaterialCost: total, GrandTotal: total},
	}
}

func TestQuoteUseCase_SubmitQuote(t *testing.T) {
	product := entities.Product{ID: "prod-1", Name: "Cedar Privacy", BaseRate: 85}
	dims := SubmitQuoteCommand{ProductID: "prod-1", Length: f64(10), Width: f64(10), Height: f64(6)}

	t.Run("no session", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.SubmitQuote(context.Background(), entities.Session{}, dims)
		if !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.SubmitQuote(context.Background(), customer, SubmitQuoteCommand{ProductID: "  "})
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, nil)

		_, err := uc.SubmitQuote(context.Background(), customer, dims)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("missing dimension is a validation error", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(product, nil)

		_, err := uc.SubmitQuote(context.Background(), customer, SubmitQuoteCommand{ProductID: "prod-1", Length: f64(10), Height: f64(6)})
		var verr *pricing.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("estimates when no cost supplied", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(product, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.Status != entities.QuoteStatusPending || !q.Unread {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.CustomerID != "cust-1" || q.CustomerName != "Ann" || q.ProductName != "Cedar Privacy" {
					t.Fatalf("unexpected denormalized fields: %+v", q)
				}
				if q.Area != 240 || q.Cost == nil || q.Cost.GrandTotal != 27700 {
					t.Fatalf("unexpected valuation: area=%v cost=%+v", q.Area, q.Cost)
				}
				if q.CreatedAt.IsZero() || !q.CreatedAt.Equal(q.UpdatedAt) {
					t.Fatalf("expected matching timestamps")
				}
				if q.ClientPriced {
					t.Fatalf("estimated quote flagged as client priced")
				}
				return q, nil
			},
		)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes)

		if _, err := uc.SubmitQuote(context.Background(), customer, dims); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("supplied zero cost is kept", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		cmd := dims
		cmd.Cost = &entities.Cost{}
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(product, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes)

		q, err := uc.SubmitQuote(context.Background(), customer, cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Cost.GrandTotal != 0 || q.Area != 240 {
			t.Fatalf("expected zero total and recomputed area, got %+v area=%v", q.Cost, q.Area)
		}
		if !q.ClientPriced {
			t.Fatalf("expected supplied cost to be flagged")
		}
	})

	t.Run("supplied cost with cents balances", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		cmd := dims
		cmd.Cost = &entities.Cost{MaterialCost: 100.1, LaborCost: 200.2, GrandTotal: 300.3}
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(product, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes)

		q, err := uc.SubmitQuote(context.Background(), customer, cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Cost.GrandTotal != 300.3 || !q.ClientPriced {
			t.Fatalf("unexpected quote: %+v client_priced=%t", q.Cost, q.ClientPriced)
		}
	})

	t.Run("unbalanced cost rejected", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		cmd := dims
		cmd.Cost = &entities.Cost{MaterialCost: 10, LaborCost: 10, TransportCost: 10, GrandTotal: 31}
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(product, nil)

		_, err := uc.SubmitQuote(context.Background(), customer, cmd)
		if !errors.Is(err, ErrInvalidQuoteCost) {
			t.Fatalf("expected ErrInvalidQuoteCost, got %v", err)
		}
	})

	t.Run("store failure surfaces as StoreError", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(product, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.SubmitQuote(context.Background(), customer, dims)
		var se *StoreError
		if !errors.As(err, &se) || se.Err.Error() != "db" {
			t.Fatalf("expected StoreError wrapping db, got %v", err)
		}
	})
}

func TestQuoteUseCase_Transition(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Approve(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Transition(context.Background(), "q-1", entities.QuoteStatus("Archived"))
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Reject(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("zero valuation blocks approval every time", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusPending, 0), nil).Times(3)

		for i := 0; i < 3; i++ {
			_, err := uc.Approve(context.Background(), "q-1")
			if !errors.Is(err, ErrZeroValuation) {
				t.Fatalf("attempt %d: expected ErrZeroValuation, got %v", i, err)
			}
		}
	})

	t.Run("legacy estimate unblocks approval", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		legacy := entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending, LegacyEstimatedCost: f64(1200)}
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(legacy, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusApproved).Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved}, nil)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes)

		if _, err := uc.Approve(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approve is idempotent", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		approved := quoteWithTotal("q-1", entities.QuoteStatusApproved, 27700)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approved, nil).Times(2)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusApproved, entities.QuoteStatusApproved).Return(approved, nil).Times(2)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes).Times(2)

		for i := 0; i < 2; i++ {
			res, err := uc.Approve(context.Background(), "q-1")
			if err != nil || res.Status != entities.QuoteStatusApproved {
				t.Fatalf("attempt %d: got %+v, %v", i, res, err)
			}
		}
	})

	t.Run("rejected cannot jump to approved", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusRejected, 500), nil)

		_, err := uc.Approve(context.Background(), "q-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("reset rejected then approve", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		gomock.InOrder(
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusRejected, 500), nil),
			m.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusRejected, entities.QuoteStatusPending).Return(quoteWithTotal("q-1", entities.QuoteStatusPending, 500), nil),
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusPending, 500), nil),
			m.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusApproved).Return(quoteWithTotal("q-1", entities.QuoteStatusApproved, 500), nil),
		)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes).Times(2)

		res, err := uc.Reset(context.Background(), "q-1")
		if err != nil || res.Status != entities.QuoteStatusPending {
			t.Fatalf("reset: got %+v, %v", res, err)
		}
		res, err = uc.Approve(context.Background(), "q-1")
		if err != nil || res.Status != entities.QuoteStatusApproved {
			t.Fatalf("approve: got %+v, %v", res, err)
		}
	})

	t.Run("concurrent reject loses approval", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		gomock.InOrder(
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusPending, 500), nil),
			m.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusApproved).
				Return(entities.Quote{}, interfaces.ErrQuoteStatusConflict),
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusRejected, 500), nil),
		)

		_, err := uc.Approve(context.Background(), "q-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("valuation zeroed between read and write", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		gomock.InOrder(
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusPending, 500), nil),
			m.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusApproved).
				Return(entities.Quote{}, interfaces.ErrQuoteStatusConflict),
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusPending, 0), nil),
		)

		_, err := uc.Approve(context.Background(), "q-1")
		if !errors.Is(err, ErrZeroValuation) {
			t.Fatalf("expected ErrZeroValuation, got %v", err)
		}
	})

	t.Run("quote deleted between read and write", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		gomock.InOrder(
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusPending, 500), nil),
			m.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusRejected).
				Return(entities.Quote{}, interfaces.ErrQuoteStatusConflict),
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil),
		)

		_, err := uc.Reject(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("store error does not notify", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusPending, 10), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusRejected).Return(entities.Quote{}, errors.New("timeout"))

		_, err := uc.Reject(context.Background(), "q-1")
		var se *StoreError
		if !errors.As(err, &se) {
			t.Fatalf("expected StoreError, got %v", err)
		}
	})
}

func TestQuoteUseCase_EditDetails(t *testing.T) {
	t.Run("text and area only skip the read", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().UpdateDetails(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.QuoteDetailsUpdate) (entities.Quote, error) {
				if upd.Cost != nil {
					t.Fatalf("cost should be untouched")
				}
				if *upd.ProductName != "Vinyl" || *upd.Area != 120 || *upd.Notes != "gate on north side" {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return entities.Quote{ID: "q-1", ProductName: *upd.ProductName, Area: *upd.Area, Notes: *upd.Notes}, nil
			},
		)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes)

		res, err := uc.EditDetails(context.Background(), "q-1", QuoteDetailsPatch{
			ProductName: str(" Vinyl "), Area: f64(120), Notes: str("gate on north side"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Area != 120 || res.ProductName != "Vinyl" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("grand total only rebalances material", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		current := entities.Quote{ID: "q-1", Cost: &entities.Cost{MaterialCost: 20400, LaborCost: 4800, TransportCost: 2500, GrandTotal: 27700}}
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(current, nil)
		m.repo.EXPECT().UpdateDetails(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.QuoteDetailsUpdate) (entities.Quote, error) {
				want := entities.Cost{MaterialCost: 22700, LaborCost: 4800, TransportCost: 2500, GrandTotal: 30000}
				if upd.Cost == nil || *upd.Cost != want {
					t.Fatalf("unexpected cost: %+v", upd.Cost)
				}
				return entities.Quote{ID: "q-1", Cost: upd.Cost}, nil
			},
		)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes)

		res, err := uc.EditDetails(context.Background(), "q-1", QuoteDetailsPatch{GrandTotal: f64(30000)})
		if err != nil || res.Cost.GrandTotal != 30000 || !res.Cost.Balanced() {
			t.Fatalf("got %+v, %v", res.Cost, err)
		}
	})

	t.Run("grand total only with cents keeps material exact", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		current := entities.Quote{ID: "q-1", Cost: &entities.Cost{MaterialCost: 20400, LaborCost: 4800.1, TransportCost: 2500.2, GrandTotal: 27700.3}}
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(current, nil)
		m.repo.EXPECT().UpdateDetails(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.QuoteDetailsUpdate) (entities.Quote, error) {
				want := entities.Cost{MaterialCost: 20400.4, LaborCost: 4800.1, TransportCost: 2500.2, GrandTotal: 27700.7}
				if upd.Cost == nil || *upd.Cost != want {
					t.Fatalf("unexpected cost: %+v", upd.Cost)
				}
				return entities.Quote{ID: "q-1", Cost: upd.Cost}, nil
			},
		)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes)

		if _, err := uc.EditDetails(context.Background(), "q-1", QuoteDetailsPatch{GrandTotal: f64(27700.7)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("components with cents agree with total", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusPending, 100), nil)
		m.repo.EXPECT().UpdateDetails(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.QuoteDetailsUpdate) (entities.Quote, error) {
				if upd.Cost.GrandTotal != 300.3 {
					t.Fatalf("unexpected cost: %+v", upd.Cost)
				}
				return entities.Quote{ID: "q-1", Cost: upd.Cost}, nil
			},
		)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes)

		_, err := uc.EditDetails(context.Background(), "q-1", QuoteDetailsPatch{
			MaterialCost: f64(100.10), LaborCost: f64(200.20), TransportCost: f64(0), GrandTotal: f64(300.30),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("legacy record migrates to canonical total", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", LegacyTotalCost: f64(900)}, nil)
		m.repo.EXPECT().UpdateDetails(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.QuoteDetailsUpdate) (entities.Quote, error) {
				if upd.Cost.GrandTotal != 1000 || upd.Cost.MaterialCost != 1000 {
					t.Fatalf("unexpected cost: %+v", upd.Cost)
				}
				return entities.Quote{ID: "q-1", Cost: upd.Cost}, nil
			},
		)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes)

		if _, err := uc.EditDetails(context.Background(), "q-1", QuoteDetailsPatch{GrandTotal: f64(1000)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("components override total", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		current := quoteWithTotal("q-1", entities.QuoteStatusPending, 100)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(current, nil)
		m.repo.EXPECT().UpdateDetails(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.QuoteDetailsUpdate) (entities.Quote, error) {
				if upd.Cost.GrandTotal != 2600 {
					t.Fatalf("unexpected cost: %+v", upd.Cost)
				}
				return entities.Quote{ID: "q-1", Cost: upd.Cost}, nil
			},
		)
		m.notifier.EXPECT().Notify(interfaces.CollectionQuotes)

		if _, err := uc.EditDetails(context.Background(), "q-1", QuoteDetailsPatch{TransportCost: f64(2500)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("disagreeing total rejected", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteWithTotal("q-1", entities.QuoteStatusPending, 100), nil)

		_, err := uc.EditDetails(context.Background(), "q-1", QuoteDetailsPatch{LaborCost: f64(50), GrandTotal: f64(100)})
		if !errors.Is(err, ErrInvalidQuoteCost) {
			t.Fatalf("expected ErrInvalidQuoteCost, got %v", err)
		}
	})

	t.Run("total below fixed components rejected", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		current := entities.Quote{ID: "q-1", Cost: &entities.Cost{LaborCost: 4800, TransportCost: 2500, GrandTotal: 7300}}
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(current, nil)

		_, err := uc.EditDetails(context.Background(), "q-1", QuoteDetailsPatch{GrandTotal: f64(1000)})
		if !errors.Is(err, ErrInvalidQuoteCost) {
			t.Fatalf("expected ErrInvalidQuoteCost, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().UpdateDetails(gomock.Any(), "q-1", gomock.Any()).Return(entities.Quote{}, nil)

		_, err := uc.EditDetails(context.Background(), "q-1", QuoteDetailsPatch{Notes: str("x")})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Queries(t *testing.T) {
	older := entities.Quote{ID: "old", CustomerID: "cust-1", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := entities.Quote{ID: "new", CustomerID: "cust-1", CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("list by customer newest first", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.Quote{older, newer}, nil)

		res, err := uc.ListByCustomer(context.Background(), " cust-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "new" || res[1].ID != "old" {
			t.Fatalf("unexpected order: %+v", res)
		}
	})

	t.Run("customer cannot read another customer's quote", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{ID: "q-9", CustomerID: "cust-2"}, nil)

		_, err := uc.GetForSession(context.Background(), customer, "q-9")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("admin reads any quote", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{ID: "q-9", CustomerID: "cust-2"}, nil)

		admin := entities.Session{UserID: "adm-1", Role: entities.RoleAdmin}
		if _, err := uc.GetForSession(context.Background(), admin, "q-9"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	hub := events.NewHub()
	uc := NewQuoteUseCase(repo, nil, hub)

	first := []entities.Quote{{ID: "q-1"}}
	second := []entities.Quote{{ID: "q-1"}, {ID: "q-2"}}
	gomock.InOrder(
		repo.EXPECT().ListAll(gomock.Any()).Return(first, nil),
		repo.EXPECT().ListAll(gomock.Any()).Return(second, nil).MinTimes(1),
	)

	ctx := context.Background()
	snaps, cancel, err := uc.Subscribe(ctx, QuoteScope{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := <-snaps
	if len(got) != 1 {
		t.Fatalf("expected initial snapshot, got %+v", got)
	}

	hub.Notify(interfaces.CollectionQuotes)
	select {
	case got = <-snaps:
		if len(got) != 2 {
			t.Fatalf("expected refreshed snapshot, got %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}

	cancel()
	for range snaps {
	}
	if n := hub.Subscribers(interfaces.CollectionQuotes); n != 0 {
		t.Fatalf("expected subscriber removed, got %d", n)
	}
}

func TestQuoteUseCase_SubscribeWithoutNotifier(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil)
	_, _, err := uc.Subscribe(context.Background(), QuoteScope{})
	if !errors.Is(err, ErrSubscriptionsUnavailable) {
		t.Fatalf("expected ErrSubscriptionsUnavailable, got %v", err)
	}
}
