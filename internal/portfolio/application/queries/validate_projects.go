package queries

import (
	"context"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// ValidationReport lists every problem found in the stored table.
type ValidationReport struct {
	Valid    bool
	Messages []string
}

// ValidateProjectsHandler checks the stored table against the editing
// rules without modifying it.
type ValidateProjectsHandler struct {
	repo domain.Repository
}

// NewValidateProjectsHandler creates a new ValidateProjectsHandler.
func NewValidateProjectsHandler(repo domain.Repository) *ValidateProjectsHandler {
	return &ValidateProjectsHandler{repo: repo}
}

// Handle loads the table and reports the validation messages.
func (h *ValidateProjectsHandler) Handle(ctx context.Context) (ValidationReport, error) {
	projects, err := h.repo.LoadAll(ctx)
	if err != nil {
		return ValidationReport{}, err
	}

	valid, messages := domain.ValidateProjects(projects)
	return ValidationReport{Valid: valid, Messages: messages}, nil
}
