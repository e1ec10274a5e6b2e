package interfaces

import (
	"context"
	"fenceworks/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Project, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Project, error)
	ListAll(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
}
