package response

import (
	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase"
)

type AdminDashboardResponse struct {
	QuotesByStatus   map[string]int  `json:"quotes_by_status"`
	UnreadQuotes     int             `json:"unread_quotes"`
	ApprovedValue    float64         `json:"approved_value"`
	PendingValue     float64         `json:"pending_value"`
	Products         int             `json:"products"`
	ProjectsByStatus map[string]int  `json:"projects_by_status"`
	RecentQuotes     []QuoteResponse `json:"recent_quotes"`
}

func FromAdminDashboard(d usecase.AdminDashboard) AdminDashboardResponse {
	return AdminDashboardResponse{
		QuotesByStatus:   quoteCounts(d.QuotesByStatus),
		UnreadQuotes:     d.UnreadQuotes,
		ApprovedValue:    money(d.ApprovedValue),
		PendingValue:     money(d.PendingValue),
		Products:         d.Products,
		ProjectsByStatus: projectCounts(d.ProjectsByStatus),
		RecentQuotes:     FromQuotes(d.RecentQuotes),
	}
}

type CustomerDashboardResponse struct {
	QuotesByStatus map[string]int    `json:"quotes_by_status"`
	ActiveProjects int               `json:"active_projects"`
	Projects       []ProjectResponse `json:"projects"`
	RecentQuotes   []QuoteResponse   `json:"recent_quotes"`
}

func FromCustomerDashboard(d usecase.CustomerDashboard) CustomerDashboardResponse {
	return CustomerDashboardResponse{
		QuotesByStatus: quoteCounts(d.QuotesByStatus),
		ActiveProjects: d.ActiveProjects,
		Projects:       FromProjects(d.Projects),
		RecentQuotes:   FromQuotes(d.RecentQuotes),
	}
}

// Every status key is present, zero or not.
func quoteCounts(in map[entities.QuoteStatus]int) map[string]int {
	out := map[string]int{
		string(entities.QuoteStatusPending):  0,
		string(entities.QuoteStatusApproved): 0,
		string(entities.QuoteStatusRejected): 0,
	}
	for k, v := range in {
		out[string(k)] += v
	}
	return out
}

func projectCounts(in map[entities.ProjectStatus]int) map[string]int {
	out := map[string]int{
		string(entities.ProjectStatusPending):    0,
		string(entities.ProjectStatusInProgress): 0,
		string(entities.ProjectStatusCompleted):  0,
	}
	for k, v := range in {
		out[string(k)] += v
	}
	return out
}

type SummaryResponse struct {
	TotalQuotes      int            `json:"total_quotes"`
	QuotesByStatus   map[string]int `json:"quotes_by_status"`
	ApprovedValue    float64        `json:"approved_value"`
	PendingValue     float64        `json:"pending_value"`
	Products         int            `json:"products"`
	ProjectsByStatus map[string]int `json:"projects_by_status"`
}

func FromSummary(d usecase.AdminDashboard) SummaryResponse {
	total := 0
	for _, n := range d.QuotesByStatus {
		total += n
	}
	return SummaryResponse{
		TotalQuotes:      total,
		QuotesByStatus:   quoteCounts(d.QuotesByStatus),
		ApprovedValue:    money(d.ApprovedValue),
		PendingValue:     money(d.PendingValue),
		Products:         d.Products,
		ProjectsByStatus: projectCounts(d.ProjectsByStatus),
	}
}
