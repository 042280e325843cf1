package queries

import (
	"context"
	"time"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// GetMonthlySummaryQuery requests the 12-month aggregation for the
// filtered portfolio. A zero FiscalStartMonth falls back to the default
// accounting convention.
type GetMonthlySummaryQuery struct {
	Filter           domain.FilterState
	FiscalStartMonth time.Month
	Today            time.Time
}

// GetMonthlySummaryHandler handles the GetMonthlySummaryQuery.
type GetMonthlySummaryHandler struct {
	repo domain.Repository
}

// NewGetMonthlySummaryHandler creates a new GetMonthlySummaryHandler.
func NewGetMonthlySummaryHandler(repo domain.Repository) *GetMonthlySummaryHandler {
	return &GetMonthlySummaryHandler{repo: repo}
}

// Handle aggregates the filtered rows into the fiscal year's monthly
// buckets.
func (h *GetMonthlySummaryHandler) Handle(ctx context.Context, q GetMonthlySummaryQuery) ([]domain.MonthlyBucket, error) {
	rows, err := loadFiltered(ctx, h.repo, q.Filter, q.Today)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, rows[i].Project)
	}
	return domain.AggregateMonthly(projects, fiscalYearOf(q.Filter, q.FiscalStartMonth, q.Today)), nil
}

// fiscalYearOf resolves the aggregation period: the filter's explicit
// fiscal year, or the one today falls in.
func fiscalYearOf(f domain.FilterState, startMonth time.Month, today time.Time) domain.FiscalYear {
	if startMonth < time.January || startMonth > time.December {
		startMonth = domain.DefaultFiscalStartMonth
	}
	if f.FiscalYear != 0 {
		return domain.NewFiscalYear(f.FiscalYear, startMonth)
	}
	return domain.FiscalYearFor(today, startMonth)
}
