package commands

import (
	"context"
	"fmt"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// ImportMode selects how imported rows are applied to the stored table.
type ImportMode string

const (
	// ImportModeMerge updates matching IDs in place and appends new ones.
	ImportModeMerge ImportMode = "merge"
	// ImportModeReplace discards the stored table in favor of the import.
	ImportModeReplace ImportMode = "replace"
)

// ImportProjectsCommand applies an uploaded project table.
type ImportProjectsCommand struct {
	Projects []domain.Project
	Mode     ImportMode
}

// ImportProjectsResult reports the size of the table after the import.
type ImportProjectsResult struct {
	Imported int
	Total    int
}

// ImportProjectsHandler handles the ImportProjectsCommand.
type ImportProjectsHandler struct {
	repo domain.Repository
}

// NewImportProjectsHandler creates a new ImportProjectsHandler.
func NewImportProjectsHandler(repo domain.Repository) *ImportProjectsHandler {
	return &ImportProjectsHandler{repo: repo}
}

// Handle merges or replaces the stored table with the imported rows.
// The resulting table is validated before it is persisted.
func (h *ImportProjectsHandler) Handle(ctx context.Context, cmd ImportProjectsCommand) (*ImportProjectsResult, error) {
	var next []domain.Project
	switch cmd.Mode {
	case ImportModeReplace:
		next = cmd.Projects
	case ImportModeMerge:
		current, err := h.repo.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		next = domain.MergeProjects(current, cmd.Projects)
	default:
		return nil, fmt.Errorf("unknown import mode %q", cmd.Mode)
	}

	if ok, messages := domain.ValidateProjects(next); !ok {
		return nil, &domain.ValidationError{Messages: messages}
	}

	if err := h.repo.SaveAll(ctx, next); err != nil {
		return nil, err
	}
	return &ImportProjectsResult{Imported: len(cmd.Projects), Total: len(next)}, nil
}
