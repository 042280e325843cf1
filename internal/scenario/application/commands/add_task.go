package commands

import (
	"context"
	"time"

	"github.com/genbaworks/genba/internal/scenario/domain"
)

// AddTaskCommand contains the data needed to append a task to a scenario.
type AddTaskCommand struct {
	Scenario   string
	Task       string
	Start      *time.Time
	Finish     *time.Time
	Resource   string
	Department string
	ValueChain string
	CostBudget float64
	RiskLevel  string
}

// AddTaskHandler handles the AddTaskCommand.
type AddTaskHandler struct {
	repo domain.Repository
}

// NewAddTaskHandler creates a new AddTaskHandler.
func NewAddTaskHandler(repo domain.Repository) *AddTaskHandler {
	return &AddTaskHandler{repo: repo}
}

// Handle appends the task and persists the full scenario list.
func (h *AddTaskHandler) Handle(ctx context.Context, cmd AddTaskCommand) error {
	scenarios, err := h.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	scenario, err := domain.FindScenario(scenarios, cmd.Scenario)
	if err != nil {
		return err
	}

	err = scenario.AddTask(domain.Task{
		Name:       cmd.Task,
		Start:      cmd.Start,
		Finish:     cmd.Finish,
		Resource:   cmd.Resource,
		Department: cmd.Department,
		ValueChain: cmd.ValueChain,
		CostBudget: cmd.CostBudget,
		RiskLevel:  cmd.RiskLevel,
	})
	if err != nil {
		return err
	}

	return h.repo.SaveAll(ctx, scenarios)
}
