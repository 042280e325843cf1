package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbaworks/genba/internal/scenario/domain"
)

type memoryScenarioRepo struct {
	scenarios []domain.Scenario
	saves     int
}

func (m *memoryScenarioRepo) LoadAll(ctx context.Context) ([]domain.Scenario, error) {
	return m.scenarios, nil
}

func (m *memoryScenarioRepo) SaveAll(ctx context.Context, scenarios []domain.Scenario) error {
	m.scenarios = scenarios
	m.saves++
	return nil
}

func TestUpdateTaskHandler(t *testing.T) {
	repo := &memoryScenarioRepo{scenarios: domain.DefaultScenarios()}
	handler := NewUpdateTaskHandler(repo)

	err := handler.Handle(context.Background(), UpdateTaskCommand{
		Scenario:    "現行計画",
		Task:        "基礎工事",
		ProgressPct: 60,
		CostActual:  9_200_000,
		RiskLevel:   "高",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saves)

	updated, err := domain.FindScenario(repo.scenarios, "現行計画")
	require.NoError(t, err)
	assert.InDelta(t, 60, updated.Tasks[0].ProgressPct, 0.0001)
	assert.Equal(t, "高", updated.Tasks[0].RiskLevel)
}

func TestUpdateTaskHandler_UnknownScenario(t *testing.T) {
	repo := &memoryScenarioRepo{scenarios: domain.DefaultScenarios()}
	handler := NewUpdateTaskHandler(repo)

	err := handler.Handle(context.Background(), UpdateTaskCommand{Scenario: "中止案", Task: "基礎工事"})
	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)
	assert.Zero(t, repo.saves)
}

func TestUpdateTaskHandler_UnknownTask(t *testing.T) {
	repo := &memoryScenarioRepo{scenarios: domain.DefaultScenarios()}
	handler := NewUpdateTaskHandler(repo)

	err := handler.Handle(context.Background(), UpdateTaskCommand{Scenario: "現行計画", Task: "解体工事"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Zero(t, repo.saves)
}

func TestAddTaskHandler(t *testing.T) {
	repo := &memoryScenarioRepo{scenarios: domain.DefaultScenarios()}
	handler := NewAddTaskHandler(repo)

	err := handler.Handle(context.Background(), AddTaskCommand{
		Scenario:   "短縮案",
		Task:       "外構工事",
		Department: "仕上管理部",
		ValueChain: "施工",
		CostBudget: 3_000_000,
	})
	require.NoError(t, err)

	shortened, err := domain.FindScenario(repo.scenarios, "短縮案")
	require.NoError(t, err)
	require.Len(t, shortened.Tasks, 5)
	assert.Equal(t, "外構工事", shortened.Tasks[4].Name)
	assert.Equal(t, domain.DefaultRiskLevel, shortened.Tasks[4].RiskLevel)
}

func TestAddTaskHandler_BlankName(t *testing.T) {
	repo := &memoryScenarioRepo{scenarios: domain.DefaultScenarios()}
	handler := NewAddTaskHandler(repo)

	err := handler.Handle(context.Background(), AddTaskCommand{Scenario: "短縮案", Task: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyTaskName)
	assert.Zero(t, repo.saves)
}
