package queries

import (
	"context"
	"time"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// GetTimelineQuery requests the portfolio timeline chart model.
type GetTimelineQuery struct {
	Filter           domain.FilterState
	FiscalStartMonth time.Month
	Today            time.Time
}

// GetTimelineHandler handles the GetTimelineQuery.
type GetTimelineHandler struct {
	repo domain.Repository
}

// NewGetTimelineHandler creates a new GetTimelineHandler.
func NewGetTimelineHandler(repo domain.Repository) *GetTimelineHandler {
	return &GetTimelineHandler{repo: repo}
}

// Handle builds bars for the filtered rows over the fiscal year's axis
// domain.
func (h *GetTimelineHandler) Handle(ctx context.Context, q GetTimelineQuery) (domain.Timeline, error) {
	rows, err := loadFiltered(ctx, h.repo, q.Filter, q.Today)
	if err != nil {
		return domain.Timeline{}, err
	}
	fallbackStart, fallbackEnd := fiscalYearOf(q.Filter, q.FiscalStartMonth, q.Today).Range()
	return domain.BuildTimeline(rows, q.Filter, fallbackStart, fallbackEnd, q.Today), nil
}

// GetScheduleQuery requests the planned-versus-actual schedule chart
// model.
type GetScheduleQuery struct {
	Filter           domain.FilterState
	FiscalStartMonth time.Month
	Today            time.Time
}

// GetScheduleHandler handles the GetScheduleQuery.
type GetScheduleHandler struct {
	repo domain.Repository
}

// NewGetScheduleHandler creates a new GetScheduleHandler.
func NewGetScheduleHandler(repo domain.Repository) *GetScheduleHandler {
	return &GetScheduleHandler{repo: repo}
}

// Handle builds paired planned and actual bars for the filtered rows.
func (h *GetScheduleHandler) Handle(ctx context.Context, q GetScheduleQuery) (domain.Schedule, error) {
	rows, err := loadFiltered(ctx, h.repo, q.Filter, q.Today)
	if err != nil {
		return domain.Schedule{}, err
	}
	fallbackStart, fallbackEnd := fiscalYearOf(q.Filter, q.FiscalStartMonth, q.Today).Range()
	return domain.BuildSchedule(rows, fallbackStart, fallbackEnd, q.Today), nil
}

// GetGanttQuery requests the compact per-project bar chart model.
type GetGanttQuery struct {
	Filter domain.FilterState
	Today  time.Time
}

// GetGanttHandler handles the GetGanttQuery.
type GetGanttHandler struct {
	repo domain.Repository
}

// NewGetGanttHandler creates a new GetGanttHandler.
func NewGetGanttHandler(repo domain.Repository) *GetGanttHandler {
	return &GetGanttHandler{repo: repo}
}

// Handle builds the chart from the filtered rows. Rows without both
// planned dates are dropped; an all-undated portfolio is an error.
func (h *GetGanttHandler) Handle(ctx context.Context, q GetGanttQuery) (domain.Gantt, error) {
	rows, err := loadFiltered(ctx, h.repo, q.Filter, q.Today)
	if err != nil {
		return domain.Gantt{}, err
	}
	return domain.BuildGantt(rows)
}
