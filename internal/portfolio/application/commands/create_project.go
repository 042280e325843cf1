// Package commands contains the write-side application handlers of the
// portfolio context.
package commands

import (
	"context"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// CreateProjectCommand carries a new project row. When ID is empty the
// next sequential ID is assigned.
type CreateProjectCommand struct {
	Project domain.Project
}

// CreateProjectResult reports the ID the project was stored under.
type CreateProjectResult struct {
	ID string
}

// CreateProjectHandler handles the CreateProjectCommand.
type CreateProjectHandler struct {
	repo domain.Repository
}

// NewCreateProjectHandler creates a new CreateProjectHandler.
func NewCreateProjectHandler(repo domain.Repository) *CreateProjectHandler {
	return &CreateProjectHandler{repo: repo}
}

// Handle assigns the ID, validates the resulting table and persists it.
func (h *CreateProjectHandler) Handle(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	projects, err := h.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	project := cmd.Project
	if project.ID == "" {
		ids := make([]string, 0, len(projects))
		for i := range projects {
			ids = append(ids, projects[i].ID)
		}
		project.ID = domain.NextProjectID(ids)
	} else {
		for i := range projects {
			if projects[i].ID == project.ID {
				return nil, domain.ErrDuplicateProjectID
			}
		}
	}
	if project.ValueChainStage == "" {
		project.ValueChainStage = domain.StageForStatus(project.Status)
	}

	projects = append(projects, project)
	if ok, messages := domain.ValidateProjects(projects); !ok {
		return nil, &domain.ValidationError{Messages: messages}
	}

	if err := h.repo.SaveAll(ctx, projects); err != nil {
		return nil, err
	}
	return &CreateProjectResult{ID: project.ID}, nil
}
