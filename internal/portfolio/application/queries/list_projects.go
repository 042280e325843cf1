// Package queries contains the read-side application handlers of the
// portfolio context.
package queries

import (
	"context"
	"time"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// ListProjectsQuery requests the enriched, filtered project table.
type ListProjectsQuery struct {
	Filter domain.FilterState
	Today  time.Time
}

// ListProjectsHandler handles the ListProjectsQuery.
type ListProjectsHandler struct {
	repo domain.Repository
}

// NewListProjectsHandler creates a new ListProjectsHandler.
func NewListProjectsHandler(repo domain.Repository) *ListProjectsHandler {
	return &ListProjectsHandler{repo: repo}
}

// Handle loads the table, derives the computed columns and applies the
// filter state.
func (h *ListProjectsHandler) Handle(ctx context.Context, q ListProjectsQuery) ([]domain.EnrichedProject, error) {
	return loadFiltered(ctx, h.repo, q.Filter, q.Today)
}

// loadFiltered is the shared read path: stored rows, enriched as of
// today, reduced by the filter state.
func loadFiltered(ctx context.Context, repo domain.Repository, f domain.FilterState, today time.Time) ([]domain.EnrichedProject, error) {
	projects, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(domain.Enrich(projects, today)), nil
}
