package handlers

import (
	"context"
	"net/http"
	"testing"

	"fenceworks/internal/adapter/http/handlers/mocks"
	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestProjectHandler(t *testing.T) {
	setup := func(t *testing.T, session entities.Session) (*mocks.MockIProjectUseCase, http.Handler) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := newTestRouter(session)
		r.POST("/v1/admin/projects", h.Create)
		r.GET("/v1/admin/projects", h.ListAll)
		r.GET("/v1/admin/projects/:id", h.Get)
		r.PATCH("/v1/admin/projects/:id", h.Update)
		r.GET("/v1/customer/projects", h.ListMine)
		return uc, r
	}

	t.Run("create requires approved quote", func(t *testing.T) {
		uc, r := setup(t, adminSession)
		uc.EXPECT().CreateFromQuote(gomock.Any(), "q-1").Return(entities.Project{}, usecase.ErrQuoteNotApproved)

		w := doRequest(r, http.MethodPost, "/v1/admin/projects", `{"quote_id":"q-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, r := setup(t, adminSession)
		uc.EXPECT().CreateFromQuote(gomock.Any(), "q-1").
			Return(entities.Project{ID: "pr-1", QuoteID: "q-1", Status: entities.ProjectStatusPending}, nil)

		w := doRequest(r, http.MethodPost, "/v1/admin/projects", `{"quote_id":"q-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update unknown status", func(t *testing.T) {
		_, r := setup(t, adminSession)
		w := doRequest(r, http.MethodPatch, "/v1/admin/projects/pr-1", `{"status":"paused"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update completes", func(t *testing.T) {
		uc, r := setup(t, adminSession)
		uc.EXPECT().Update(gomock.Any(), "pr-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p usecase.ProjectPatch) (entities.Project, error) {
				if p.Status == nil || *p.Status != entities.ProjectStatusCompleted {
					t.Fatalf("expected Completed, got %v", p.Status)
				}
				return entities.Project{ID: "pr-1", Status: entities.ProjectStatusCompleted, Progress: 100}, nil
			})

		w := doRequest(r, http.MethodPatch, "/v1/admin/projects/pr-1", `{"status":"completed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["progress"] != 100.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		uc, r := setup(t, adminSession)
		uc.EXPECT().GetByID(gomock.Any(), "pr-9").Return(entities.Project{}, usecase.ErrProjectNotFound)

		if w := doRequest(r, http.MethodGet, "/v1/admin/projects/pr-9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("lists", func(t *testing.T) {
		uc, r := setup(t, customerSession)
		uc.EXPECT().ListAll(gomock.Any()).Return([]entities.Project{{ID: "pr-1"}}, nil)
		uc.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return(nil, nil)

		if w := doRequest(r, http.MethodGet, "/v1/admin/projects", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		w := doRequest(r, http.MethodGet, "/v1/customer/projects", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
		}
	})
}
