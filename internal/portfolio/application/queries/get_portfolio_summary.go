package queries

import (
	"context"
	"time"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// PortfolioSummary carries the dashboard headline figures for the
// filtered portfolio.
type PortfolioSummary struct {
	ProjectCount      int
	TotalOrderAmount  float64
	TotalGrossProfit  float64
	AvgGrossMarginPct float64
	HighRiskCount     int
	DelayedCount      int
}

// GetPortfolioSummaryQuery requests the dashboard headline figures.
type GetPortfolioSummaryQuery struct {
	Filter domain.FilterState
	Today  time.Time
}

// GetPortfolioSummaryHandler handles the GetPortfolioSummaryQuery.
type GetPortfolioSummaryHandler struct {
	repo domain.Repository
}

// NewGetPortfolioSummaryHandler creates a new GetPortfolioSummaryHandler.
func NewGetPortfolioSummaryHandler(repo domain.Repository) *GetPortfolioSummaryHandler {
	return &GetPortfolioSummaryHandler{repo: repo}
}

// Handle totals the filtered rows. The average margin weights every row
// equally, matching how the figures read on the dashboard.
func (h *GetPortfolioSummaryHandler) Handle(ctx context.Context, q GetPortfolioSummaryQuery) (PortfolioSummary, error) {
	rows, err := loadFiltered(ctx, h.repo, q.Filter, q.Today)
	if err != nil {
		return PortfolioSummary{}, err
	}

	summary := PortfolioSummary{ProjectCount: len(rows)}
	for i := range rows {
		row := &rows[i]
		summary.TotalOrderAmount += row.OrderAmount
		summary.TotalGrossProfit += row.GrossProfit
		summary.AvgGrossMarginPct += row.GrossMarginPct
		if row.ComputedRiskLevel == domain.RiskHigh {
			summary.HighRiskCount++
		}
		if row.DelayDays > 0 {
			summary.DelayedCount++
		}
	}
	if len(rows) > 0 {
		summary.AvgGrossMarginPct /= float64(len(rows))
	}
	return summary, nil
}
