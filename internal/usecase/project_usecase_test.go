package usecase

import (
	"context"
	"errors"
	"testing"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"
	mock_interfaces "fenceworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_CreateFromQuote(t *testing.T) {
	approved := entities.Quote{ID: "q-1", CustomerID: "cust-1", ProductID: "p-1", ProductName: "Cedar", Status: entities.QuoteStatusApproved}

	setup := func(t *testing.T) (*ProjectUseCase, *mock_interfaces.MockIProjectRepository, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockIChangeNotifier) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		return NewProjectUseCase(repo, quotes, notifier), repo, quotes, notifier
	}

	t.Run("quote must be approved", func(t *testing.T) {
		uc, _, quotes, _ := setup(t)
		pending := approved
		pending.Status = entities.QuoteStatusPending
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)

		_, err := uc.CreateFromQuote(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})

	t.Run("one project per quote", func(t *testing.T) {
		uc, repo, quotes, _ := setup(t)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(approved, nil)
		repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Project{ID: "pr-1"}, nil)

		_, err := uc.CreateFromQuote(context.Background(), "q-1")
		if !errors.Is(err, ErrProjectAlreadyExists) {
			t.Fatalf("expected ErrProjectAlreadyExists, got %v", err)
		}
	})

	t.Run("creates with default milestones", func(t *testing.T) {
		uc, repo, quotes, notifier := setup(t)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(approved, nil)
		repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		notifier.EXPECT().Notify(interfaces.CollectionProjects)

		p, err := uc.CreateFromQuote(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.CustomerID != "cust-1" || p.Status != entities.ProjectStatusPending || p.Progress != 0 {
			t.Fatalf("unexpected project: %+v", p)
		}
		if len(p.Milestones) != len(DefaultMilestones) || p.Milestones[0].Name != DefaultMilestones[0] {
			t.Fatalf("unexpected milestones: %+v", p.Milestones)
		}
	})
}

func TestProjectUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProjectRepository(ctrl)
	uc := NewProjectUseCase(repo, nil, nil)
	current := entities.Project{ID: "pr-1", Status: entities.ProjectStatusInProgress, Progress: 40}

	completed := entities.ProjectStatusCompleted
	progress := func(v int) *int { return &v }

	t.Run("completed requires full progress", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(current, nil)
		_, err := uc.Update(context.Background(), "pr-1", ProjectPatch{Status: &completed})
		if !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
	})

	t.Run("progress out of range", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(current, nil)
		_, err := uc.Update(context.Background(), "pr-1", ProjectPatch{Progress: progress(101)})
		if !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
	})

	t.Run("complete", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		p, err := uc.Update(context.Background(), "pr-1", ProjectPatch{Status: &completed, Progress: progress(100)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != completed || p.Progress != 100 || p.UpdatedAt.IsZero() {
			t.Fatalf("unexpected project: %+v", p)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "pr-9").Return(entities.Project{}, nil)
		_, err := uc.Update(context.Background(), "pr-9", ProjectPatch{})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}
