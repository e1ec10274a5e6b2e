package response

import (
	"testing"
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/domain/pricing"
	"fenceworks/internal/usecase"
)

func TestFromBreakdown_Rounds(t *testing.T) {
	b := pricing.Estimate(10.333, 5, 4.1, 12.345)
	res := FromBreakdown(b)
	want := b.Rounded()
	if res.Area != want.Area || res.GrandTotal != want.GrandTotal || res.MaterialCost != want.MaterialCost {
		t.Fatalf("unexpected rounding: %+v vs %+v", res, want)
	}
}

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()

	t.Run("itemized", func(t *testing.T) {
		q := entities.Quote{
			ID:        "q-1",
			Status:    entities.QuoteStatusPending,
			Area:      960,
			Cost:      &entities.Cost{MaterialCost: 9600.004, LaborCost: 19200, TransportCost: 4000, GrandTotal: 32800.004},
			CreatedAt: now,
		}
		res := FromQuote(q)
		if res.Cost == nil || res.Cost.MaterialCost != 9600 {
			t.Fatalf("expected rounded cost, got %+v", res.Cost)
		}
		if res.GrandTotal != 32800 || res.Status != "Pending" {
			t.Fatalf("unexpected fields: %+v", res)
		}
		if res.ClientPriced {
			t.Fatalf("expected estimator-priced quote")
		}
	})

	t.Run("client priced flag", func(t *testing.T) {
		res := FromQuote(entities.Quote{ID: "q-3", Cost: &entities.Cost{}, ClientPriced: true})
		if !res.ClientPriced || res.GrandTotal != 0 {
			t.Fatalf("unexpected fields: %+v", res)
		}
	})

	t.Run("legacy", func(t *testing.T) {
		legacy := 1500.0
		res := FromQuote(entities.Quote{ID: "q-2", LegacyTotalCost: &legacy})
		if res.Cost != nil {
			t.Fatalf("expected no cost breakdown, got %+v", res.Cost)
		}
		if res.GrandTotal != 1500 {
			t.Fatalf("expected legacy valuation, got %v", res.GrandTotal)
		}
	})

	t.Run("list keeps order", func(t *testing.T) {
		out := FromQuotes([]entities.Quote{{ID: "a"}, {ID: "b"}})
		if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
			t.Fatalf("unexpected list: %+v", out)
		}
		if got := FromQuotes(nil); got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", got)
		}
	})
}

func TestFromProductAndProject_NilSlices(t *testing.T) {
	p := FromProduct(entities.Product{ID: "p-1", BaseRate: 10.005})
	if p.Images == nil {
		t.Fatalf("expected empty images slice")
	}
	pr := FromProject(entities.Project{ID: "pr-1", Status: entities.ProjectStatusPending})
	if pr.Milestones == nil || pr.Status != "Pending" {
		t.Fatalf("unexpected project: %+v", pr)
	}
}

func TestFromAdminDashboard_AllStatusKeys(t *testing.T) {
	d := usecase.AdminDashboard{
		QuotesByStatus: map[entities.QuoteStatus]int{entities.QuoteStatusApproved: 2},
		ApprovedValue:  1000.456,
	}
	res := FromAdminDashboard(d)
	if res.QuotesByStatus["Approved"] != 2 || res.QuotesByStatus["Pending"] != 0 {
		t.Fatalf("unexpected counts: %+v", res.QuotesByStatus)
	}
	if _, ok := res.ProjectsByStatus["In Progress"]; !ok {
		t.Fatalf("expected project status keys, got %+v", res.ProjectsByStatus)
	}
	if res.ApprovedValue != 1000.46 {
		t.Fatalf("expected 1000.46, got %v", res.ApprovedValue)
	}
}

func TestFromSession(t *testing.T) {
	s := entities.Session{UserID: "u-1", Role: entities.RoleAdmin, Token: "tok"}
	res := FromSession(s, "/v1/admin/dashboard")
	if res.Role != "Admin" || res.Redirect != "/v1/admin/dashboard" || res.Token != "tok" {
		t.Fatalf("unexpected session response: %+v", res)
	}
}
