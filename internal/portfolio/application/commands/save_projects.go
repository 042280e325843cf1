package commands

import (
	"context"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// SaveProjectsCommand replaces the whole project table, the way an
// edited grid is committed.
type SaveProjectsCommand struct {
	Projects []domain.Project
}

// SaveProjectsHandler handles the SaveProjectsCommand.
type SaveProjectsHandler struct {
	repo domain.Repository
}

// NewSaveProjectsHandler creates a new SaveProjectsHandler.
func NewSaveProjectsHandler(repo domain.Repository) *SaveProjectsHandler {
	return &SaveProjectsHandler{repo: repo}
}

// Handle validates the table and persists it. A rejected table returns a
// ValidationError listing every problem and leaves the stored data
// untouched.
func (h *SaveProjectsHandler) Handle(ctx context.Context, cmd SaveProjectsCommand) error {
	if ok, messages := domain.ValidateProjects(cmd.Projects); !ok {
		return &domain.ValidationError{Messages: messages}
	}
	return h.repo.SaveAll(ctx, cmd.Projects)
}
