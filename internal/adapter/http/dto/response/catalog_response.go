package response

import (
	"time"

	"fenceworks/internal/domain/entities"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	BaseRate    float64   `json:"base_rate"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		BaseRate:    money(p.BaseRate),
		Description: p.Description,
		Images:      images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type ProjectResponse struct {
	ID          string               `json:"id"`
	QuoteID     string               `json:"quote_id"`
	CustomerID  string               `json:"customer_id"`
	ProductID   string               `json:"product_id"`
	ProductName string               `json:"product_name"`
	Status      string               `json:"status"`
	Progress    int                  `json:"progress"`
	Milestones  []entities.Milestone `json:"milestones"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	ms := p.Milestones
	if ms == nil {
		ms = []entities.Milestone{}
	}
	return ProjectResponse{
		ID:          p.ID,
		QuoteID:     p.QuoteID,
		CustomerID:  p.CustomerID,
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Status:      string(p.Status),
		Progress:    p.Progress,
		Milestones:  ms,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
