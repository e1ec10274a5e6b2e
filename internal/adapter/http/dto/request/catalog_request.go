package request

import (
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase"
)

type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category"`
	BaseRate    *float64 `json:"base_rate" binding:"required"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

func (r ProductRequest) ToEntity() entities.Product {
	p := entities.Product{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Images:      r.Images,
	}
	if r.BaseRate != nil {
		p.BaseRate = *r.BaseRate
	}
	return p
}

type CreateProjectRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}

type MilestoneRequest struct {
	Name   string     `json:"name"`
	Status string     `json:"status"`
	Date   *time.Time `json:"date"`
}

type UpdateProjectRequest struct {
	Status     *string             `json:"status"`
	Progress   *int                `json:"progress"`
	Milestones *[]MilestoneRequest `json:"milestones"`
}

// ToPatch reports ok=false for an unknown status name.
func (r UpdateProjectRequest) ToPatch() (usecase.ProjectPatch, bool) {
	var patch usecase.ProjectPatch
	if r.Status != nil {
		st, ok := entities.ParseProjectStatus(*r.Status)
		if !ok {
			return usecase.ProjectPatch{}, false
		}
		patch.Status = &st
	}
	patch.Progress = r.Progress
	if r.Milestones != nil {
		ms := make([]entities.Milestone, 0, len(*r.Milestones))
		for _, m := range *r.Milestones {
			ms = append(ms, entities.Milestone{Name: m.Name, Status: m.Status, Date: m.Date})
		}
		patch.Milestones = &ms
	}
	return patch, true
}
