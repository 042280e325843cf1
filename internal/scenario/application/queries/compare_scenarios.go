package queries

import (
	"context"

	"github.com/genbaworks/genba/internal/scenario/domain"
)

// ScenarioComparison pairs a scenario with its summary metrics and
// value-chain cost rollup.
type ScenarioComparison struct {
	Scenario domain.Scenario
	Metrics  domain.Metrics
	Costs    []domain.StageCost
}

// CompareScenariosHandler builds the comparison table across every
// stored scenario.
type CompareScenariosHandler struct {
	repo domain.Repository
}

// NewCompareScenariosHandler creates a new CompareScenariosHandler.
func NewCompareScenariosHandler(repo domain.Repository) *CompareScenariosHandler {
	return &CompareScenariosHandler{repo: repo}
}

// Handle loads every scenario in stored order and summarizes each.
func (h *CompareScenariosHandler) Handle(ctx context.Context) ([]ScenarioComparison, error) {
	scenarios, err := h.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	comparisons := make([]ScenarioComparison, 0, len(scenarios))
	for _, s := range scenarios {
		comparisons = append(comparisons, ScenarioComparison{
			Scenario: s,
			Metrics:  s.Summarize(),
			Costs:    s.CostByStage(),
		})
	}
	return comparisons, nil
}
