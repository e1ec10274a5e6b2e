package repository

import (
	"context"
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"
)

const (
	defaultProjectsTableName = "projects"
	projectsCustomerIDIndex  = "customer_id-index"
	projectsQuoteIDIndex     = "quote_id-index"
)

type milestoneItem struct {
	Name   string `dynamodbav:"name"`
	Status string `dynamodbav:"status"`
	Date   string `dynamodbav:"date,omitempty"`
}

type projectItem struct {
	ID          string          `dynamodbav:"id"`
	QuoteID     string          `dynamodbav:"quote_id"`
	CustomerID  string          `dynamodbav:"customer_id"`
	ProductID   string          `dynamodbav:"product_id"`
	ProductName string          `dynamodbav:"product_name"`
	Status      string          `dynamodbav:"status"`
	Progress    int             `dynamodbav:"progress"`
	Milestones  []milestoneItem `dynamodbav:"milestones"`
	CreatedAt   string          `dynamodbav:"created_at"`
	UpdatedAt   string          `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists installation projects in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: quote_id-index (PK: quote_id)
type ProjectDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb DynamoAPI) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	created, err := putNew(ctx, r.ddb, r.tableName, "id", toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}
	if !created {
		return entities.Project{}, errDuplicateKey("project", p.ID)
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	it, found, err := getItem[projectItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

// GetByQuoteID returns the project scheduled for a quote. GSI reads are
// eventually consistent, so a project created a moment ago may be missed.
func (r *ProjectDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Project, error) {
	items, err := queryIndex[projectItem](ctx, r.ddb, r.tableName, projectsQuoteIDIndex, "quote_id", quoteID)
	if err != nil || len(items) == 0 {
		return entities.Project{}, err
	}
	return fromProjectItem(items[0]), nil
}

func (r *ProjectDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Project, error) {
	items, err := queryIndex[projectItem](ctx, r.ddb, r.tableName, projectsCustomerIDIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	return fromProjectItems(items), nil
}

func (r *ProjectDynamoRepository) ListAll(ctx context.Context) ([]entities.Project, error) {
	items, err := scanAll[projectItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return fromProjectItems(items), nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toProjectItem(p))
	if err != nil || !found {
		return entities.Project{}, err
	}
	return p, nil
}

func toProjectItem(p entities.Project) projectItem {
	milestones := make([]milestoneItem, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		mi := milestoneItem{Name: m.Name, Status: m.Status}
		if m.Date != nil {
			mi.Date = formatTime(*m.Date)
		}
		milestones = append(milestones, mi)
	}
	return projectItem{
		ID:          p.ID,
		QuoteID:     p.QuoteID,
		CustomerID:  p.CustomerID,
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Status:      string(p.Status),
		Progress:    p.Progress,
		Milestones:  milestones,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	milestones := make([]entities.Milestone, 0, len(it.Milestones))
	for _, mi := range it.Milestones {
		m := entities.Milestone{Name: mi.Name, Status: mi.Status}
		if mi.Date != "" {
			if d, err := time.Parse(time.RFC3339Nano, mi.Date); err == nil {
				m.Date = &d
			}
		}
		milestones = append(milestones, m)
	}
	return entities.Project{
		ID:          it.ID,
		QuoteID:     it.QuoteID,
		CustomerID:  it.CustomerID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		Status:      entities.ProjectStatus(it.Status),
		Progress:    it.Progress,
		Milestones:  milestones,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func fromProjectItems(items []projectItem) []entities.Project {
	out := make([]entities.Project, 0, len(items))
	for _, it := range items {
		out = append(out, fromProjectItem(it))
	}
	return out
}
