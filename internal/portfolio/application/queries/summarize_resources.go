package queries

import (
	"context"
	"time"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// ResourceSummary groups the headcount rollups of the filtered
// portfolio.
type ResourceSummary struct {
	Managers []domain.ResourceLoad
	Partners []domain.ResourceLoad
}

// SummarizeResourcesQuery requests the headcount rollups.
type SummarizeResourcesQuery struct {
	Filter domain.FilterState
	Today  time.Time
}

// SummarizeResourcesHandler handles the SummarizeResourcesQuery.
type SummarizeResourcesHandler struct {
	repo domain.Repository
}

// NewSummarizeResourcesHandler creates a new SummarizeResourcesHandler.
func NewSummarizeResourcesHandler(repo domain.Repository) *SummarizeResourcesHandler {
	return &SummarizeResourcesHandler{repo: repo}
}

// Handle sums the average monthly headcount by manager and by partner.
func (h *SummarizeResourcesHandler) Handle(ctx context.Context, q SummarizeResourcesQuery) (ResourceSummary, error) {
	rows, err := loadFiltered(ctx, h.repo, q.Filter, q.Today)
	if err != nil {
		return ResourceSummary{}, err
	}

	managers, partners := domain.SummarizeResources(rows)
	return ResourceSummary{Managers: managers, Partners: partners}, nil
}
