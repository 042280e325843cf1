package commands

import (
	"context"

	"github.com/genbaworks/genba/internal/scenario/domain"
)

// UpdateTaskCommand contains the data needed to update a task's progress.
type UpdateTaskCommand struct {
	Scenario    string
	Task        string
	ProgressPct float64
	CostActual  float64
	RiskLevel   string
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	repo domain.Repository
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(repo domain.Repository) *UpdateTaskHandler {
	return &UpdateTaskHandler{repo: repo}
}

// Handle applies the update and persists the full scenario list.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) error {
	scenarios, err := h.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	scenario, err := domain.FindScenario(scenarios, cmd.Scenario)
	if err != nil {
		return err
	}

	err = scenario.UpdateTask(cmd.Task, domain.TaskUpdate{
		ProgressPct: cmd.ProgressPct,
		CostActual:  cmd.CostActual,
		RiskLevel:   cmd.RiskLevel,
	})
	if err != nil {
		return err
	}

	return h.repo.SaveAll(ctx, scenarios)
}
