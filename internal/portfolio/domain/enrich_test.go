package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrich_FullIndicatorSet(t *testing.T) {
	today := date(2025, time.September, 1)
	projects := []Project{
		{
			ID:                 "P001",
			Name:               "山手物流倉庫新築",
			Status:             StatusInProgress,
			PlannedStart:       datePtr(2025, time.July, 10),
			PlannedEnd:         datePtr(2025, time.October, 30),
			OrderPlannedAmount: 24_000_000,
			OrderAmount:        25_000_000,
			BudgetCost:         18_000_000,
			PlannedCost:        19_000_000,
			ActualCost:         12_000_000,
			ProgressPct:        40,
		},
	}

	enriched := Enrich(projects, today)
	require.Len(t, enriched, 1)
	e := enriched[0]

	assert.InDelta(t, 6_000_000, e.GrossProfit, 0.01)
	assert.InDelta(t, 76.0, e.CostRatioPct, 0.0001)
	assert.InDelta(t, 1_000_000, e.OrderVariance, 0.01)
	assert.InDelta(t, 1_000_000, e.BudgetVariance, 0.01)
	assert.True(t, e.IsOverBudget)
	assert.InDelta(t, 10_000_000, e.CompletedValue, 0.01)
	assert.InDelta(t, 13_000_000, e.RealizedGrossProfit, 0.01)

	// 53 elapsed of 112 scheduled days on 2025-09-01.
	assert.InDelta(t, 47.3214, e.ExpectedProgressPct, 0.001)
	assert.InDelta(t, -7.3214, e.ProgressVariancePct, 0.001)
	assert.Equal(t, 0, e.DelayDays)

	assert.Equal(t, RiskHigh, e.ComputedRiskLevel)
	assert.Equal(t, "予算超過", e.RiskComment)
	assert.Equal(t, StageConstruction, e.ValueChainStage)
}

func TestEnrich_MissingDatesYieldZeroedScheduleFields(t *testing.T) {
	enriched := Enrich([]Project{{ID: "P002", Status: StatusQuoting}}, date(2025, time.September, 1))
	require.Len(t, enriched, 1)
	e := enriched[0]

	assert.Zero(t, e.ExpectedProgressPct)
	assert.Zero(t, e.ProgressVariancePct)
	assert.Zero(t, e.DelayDays)
	assert.Equal(t, RiskLow, e.ComputedRiskLevel)
	assert.Equal(t, "安定", e.RiskComment)
	assert.Equal(t, StageProcurement, e.ValueChainStage)
}

func TestEnrich_ZeroOrderAmountSkipsCostRatio(t *testing.T) {
	enriched := Enrich([]Project{{
		ID:           "P003",
		PlannedStart: datePtr(2025, time.July, 1),
		PlannedEnd:   datePtr(2025, time.July, 31),
		PlannedCost:  5_000_000,
	}}, date(2025, time.June, 1))

	assert.Zero(t, enriched[0].CostRatioPct)
	assert.InDelta(t, -5_000_000, enriched[0].GrossProfit, 0.01)
}

func TestEnrich_DelayFeedsRisk(t *testing.T) {
	enriched := Enrich([]Project{{
		ID:           "P004",
		Status:       StatusCompleted,
		PlannedStart: datePtr(2025, time.March, 1),
		PlannedEnd:   datePtr(2025, time.June, 30),
		ActualStart:  datePtr(2025, time.March, 5),
		ActualEnd:    datePtr(2025, time.July, 14),
		ProgressPct:  100,
	}}, date(2025, time.September, 1))

	e := enriched[0]
	assert.Equal(t, 14, e.DelayDays)
	assert.Equal(t, RiskHigh, e.ComputedRiskLevel)
	assert.Equal(t, "遅延14日", e.RiskComment)
	assert.Equal(t, StageHandover, e.ValueChainStage)
}

func TestEnrich_StoredValueChainStageWins(t *testing.T) {
	enriched := Enrich([]Project{{
		ID:              "P005",
		Status:          StatusInProgress,
		ValueChainStage: StageInspection,
	}}, date(2025, time.September, 1))

	assert.Equal(t, StageInspection, enriched[0].ValueChainStage)
}

func TestEnrich_Deterministic(t *testing.T) {
	today := date(2025, time.September, 1)
	projects := []Project{{
		ID:           "P006",
		PlannedStart: datePtr(2025, time.July, 1),
		PlannedEnd:   datePtr(2025, time.December, 20),
		OrderAmount:  8_000_000,
		PlannedCost:  6_500_000,
		ProgressPct:  10,
	}}

	first := Enrich(projects, today)
	second := Enrich(projects, today)
	assert.Equal(t, first, second)
}
