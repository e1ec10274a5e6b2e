package usecase

import (
	"context"
	"errors"
	"io"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"
)

const recentQuotesLimit = 5

var ErrExporterNotConfigured = errors.New("report exporter not configured")

// AdminDashboard is the back-office landing summary.
type AdminDashboard struct {
	QuotesByStatus   map[entities.QuoteStatus]int
	UnreadQuotes     int
	ApprovedValue    float64
	PendingValue     float64
	Products         int
	ProjectsByStatus map[entities.ProjectStatus]int
	RecentQuotes     []entities.Quote
}

// CustomerDashboard summarises one customer's activity.
type CustomerDashboard struct {
	QuotesByStatus map[entities.QuoteStatus]int
	ActiveProjects int
	Projects       []entities.Project
	RecentQuotes   []entities.Quote
}

type IReportUseCase interface {
	AdminDashboard(ctx context.Context) (AdminDashboard, error)
	CustomerDashboard(ctx context.Context, session entities.Session) (CustomerDashboard, error)
	ExportQuotes(ctx context.Context, w io.Writer) error
}

type ReportUseCase struct {
	quotes   interfaces.IQuoteRepository
	projects interfaces.IProjectRepository
	products interfaces.IProductRepository
	exporter interfaces.IQuoteExporter
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(quotes interfaces.IQuoteRepository, projects interfaces.IProjectRepository, products interfaces.IProductRepository, exporter interfaces.IQuoteExporter) *ReportUseCase {
	return &ReportUseCase{quotes: quotes, projects: projects, products: products, exporter: exporter}
}

func (u *ReportUseCase) AdminDashboard(ctx context.Context) (AdminDashboard, error) {
	quotes, err := u.quotes.ListAll(ctx)
	if err != nil {
		return AdminDashboard{}, storeErr("list quotes", err)
	}
	projects, err := u.projects.ListAll(ctx)
	if err != nil {
		return AdminDashboard{}, storeErr("list projects", err)
	}
	products, err := u.products.ListAll(ctx)
	if err != nil {
		return AdminDashboard{}, storeErr("list products", err)
	}

	sortQuotesNewestFirst(quotes)
	d := AdminDashboard{
		QuotesByStatus:   countQuotes(quotes),
		ProjectsByStatus: countProjects(projects),
		Products:         len(products),
		RecentQuotes:     head(quotes, recentQuotesLimit),
	}
	for _, q := range quotes {
		if q.Unread {
			d.UnreadQuotes++
		}
		switch q.Status {
		case entities.QuoteStatusApproved:
			d.ApprovedValue += q.EffectiveValuation()
		case entities.QuoteStatusPending:
			d.PendingValue += q.EffectiveValuation()
		}
	}
	return d, nil
}

func (u *ReportUseCase) CustomerDashboard(ctx context.Context, session entities.Session) (CustomerDashboard, error) {
	if session.IsZero() {
		return CustomerDashboard{}, ErrInvalidSession
	}
	quotes, err := u.quotes.ListByCustomerID(ctx, session.UserID)
	if err != nil {
		return CustomerDashboard{}, storeErr("list quotes", err)
	}
	projects, err := u.projects.ListByCustomerID(ctx, session.UserID)
	if err != nil {
		return CustomerDashboard{}, storeErr("list projects", err)
	}

	sortQuotesNewestFirst(quotes)
	sortProjectsNewestFirst(projects)
	d := CustomerDashboard{
		QuotesByStatus: countQuotes(quotes),
		Projects:       projects,
		RecentQuotes:   head(quotes, recentQuotesLimit),
	}
	for _, p := range projects {
		if p.Status != entities.ProjectStatusCompleted {
			d.ActiveProjects++
		}
	}
	return d, nil
}

// ExportQuotes writes every quote, newest first.
func (u *ReportUseCase) ExportQuotes(ctx context.Context, w io.Writer) error {
	if u.exporter == nil {
		return ErrExporterNotConfigured
	}
	quotes, err := u.quotes.ListAll(ctx)
	if err != nil {
		return storeErr("list quotes", err)
	}
	sortQuotesNewestFirst(quotes)
	return u.exporter.WriteQuotes(w, quotes)
}

func countQuotes(quotes []entities.Quote) map[entities.QuoteStatus]int {
	out := map[entities.QuoteStatus]int{
		entities.QuoteStatusPending:  0,
		entities.QuoteStatusApproved: 0,
		entities.QuoteStatusRejected: 0,
	}
	for _, q := range quotes {
		out[q.Status]++
	}
	return out
}

func countProjects(projects []entities.Project) map[entities.ProjectStatus]int {
	out := map[entities.ProjectStatus]int{
		entities.ProjectStatusPending:    0,
		entities.ProjectStatusInProgress: 0,
		entities.ProjectStatusCompleted:  0,
	}
	for _, p := range projects {
		out[p.Status]++
	}
	return out
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
