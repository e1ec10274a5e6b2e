package entities

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "Pending"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

func ParseProjectStatus(s string) (ProjectStatus, bool) {
	switch strings.ToLower(strings.Join(strings.Fields(s), " ")) {
	case "pending":
		return ProjectStatusPending, true
	case "in progress", "in-progress", "in_progress":
		return ProjectStatusInProgress, true
	case "completed":
		return ProjectStatusCompleted, true
	}
	return "", false
}

// Milestone is one step of an installation. Order inside Project.Milestones
// is the execution sequence.
type Milestone struct {
	Name   string     `json:"name"`
	Status string     `json:"status"`
	Date   *time.Time `json:"date"`
}

// Project tracks the installation that follows an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
type Project struct {
	ID          string        `json:"id"`
	QuoteID     string        `json:"quote_id"`
	CustomerID  string        `json:"customer_id"`
	ProductID   string        `json:"product_id"`
	ProductName string        `json:"product_name"`
	Status      ProjectStatus `json:"status"`
	Progress    int           `json:"progress"`
	Milestones  []Milestone   `json:"milestones"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
