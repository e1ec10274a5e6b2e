package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAlreadyExists = errors.New("project already exists for quote")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidProject       = errors.New("invalid project")
	ErrQuoteNotApproved     = errors.New("quote not approved")
)

// DefaultMilestones is the execution sequence of a standard installation.
var DefaultMilestones = []string{"Site survey", "Material delivery", "Installation", "Final inspection"}

// ProjectPatch is an admin progress update. Nil fields are left as they are.
type ProjectPatch struct {
	Status     *entities.ProjectStatus
	Progress   *int
	Milestones *[]entities.Milestone
}

type IProjectUseCase interface {
	CreateFromQuote(ctx context.Context, quoteID string) (entities.Project, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Project, error)
	ListAll(ctx context.Context) ([]entities.Project, error)
}

type ProjectUseCase struct {
	repo     interfaces.IProjectRepository
	quotes   interfaces.IQuoteRepository
	notifier interfaces.IChangeNotifier
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, quotes interfaces.IQuoteRepository, notifier interfaces.IChangeNotifier) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, quotes: quotes, notifier: notifier}
}

// CreateFromQuote schedules the installation of an approved quote.
// One project per quote.
func (u *ProjectUseCase) CreateFromQuote(ctx context.Context, quoteID string) (entities.Project, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Project{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Project{}, storeErr("get quote", err)
	}
	if q.ID == "" {
		return entities.Project{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusApproved {
		return entities.Project{}, ErrQuoteNotApproved
	}

	if existing, err := u.repo.GetByQuoteID(ctx, quoteID); err != nil {
		return entities.Project{}, storeErr("get project by quote", err)
	} else if existing.ID != "" {
		return entities.Project{}, ErrProjectAlreadyExists
	}

	milestones := make([]entities.Milestone, 0, len(DefaultMilestones))
	for _, name := range DefaultMilestones {
		milestones = append(milestones, entities.Milestone{Name: name, Status: string(entities.ProjectStatusPending)})
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:          uuid.NewString(),
		QuoteID:     q.ID,
		CustomerID:  q.CustomerID,
		ProductID:   q.ProductID,
		ProductName: q.ProductName,
		Status:      entities.ProjectStatusPending,
		Progress:    0,
		Milestones:  milestones,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, storeErr("create project", err)
	}
	log.Printf("[project][usecase] created project_id=%s quote_id=%s", created.ID, created.QuoteID)
	u.notify()
	return created, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, patch ProjectPatch) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, storeErr("get project", err)
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	if patch.Milestones != nil {
		p.Milestones = append([]entities.Milestone(nil), (*patch.Milestones)...)
	}
	if err := validateProject(p); err != nil {
		return entities.Project{}, err
	}
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, storeErr("update project", err)
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] updated project_id=%s status=%s progress=%d", updated.ID, updated.Status, updated.Progress)
	u.notify()
	return updated, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, storeErr("get project", err)
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Project, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidSession
	}
	projects, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, storeErr("list projects", err)
	}
	sortProjectsNewestFirst(projects)
	return projects, nil
}

func (u *ProjectUseCase) ListAll(ctx context.Context) ([]entities.Project, error) {
	projects, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, storeErr("list projects", err)
	}
	sortProjectsNewestFirst(projects)
	return projects, nil
}

func (u *ProjectUseCase) notify() {
	if u.notifier != nil {
		u.notifier.Notify(interfaces.CollectionProjects)
	}
}

func validateProject(p entities.Project) error {
	if _, ok := entities.ParseProjectStatus(string(p.Status)); !ok {
		return ErrInvalidProject
	}
	if p.Progress < 0 || p.Progress > 100 {
		return ErrInvalidProject
	}
	if p.Status == entities.ProjectStatusCompleted && p.Progress != 100 {
		return ErrInvalidProject
	}
	for _, m := range p.Milestones {
		if strings.TrimSpace(m.Name) == "" {
			return ErrInvalidProject
		}
	}
	return nil
}

func sortProjectsNewestFirst(projects []entities.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
}
