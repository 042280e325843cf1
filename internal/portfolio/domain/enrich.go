package domain

import "time"

// EnrichedProject is a project row plus its derived financial, schedule
// and risk indicators. Derived fields are recomputed on every enrichment
// pass and never persisted; only the embedded row is source of truth.
type EnrichedProject struct {
	Project

	GrossProfit         float64 // 粗利額
	CostRatioPct        float64 // 原価率
	OrderVariance       float64 // 受注差異
	BudgetVariance      float64 // 予算乖離額
	IsOverBudget        bool    // 予算超過
	CompletedValue      float64 // 完成工事高
	RealizedGrossProfit float64 // 実行粗利

	ExpectedProgressPct float64 // 想定進捗率
	ProgressVariancePct float64 // 進捗差異
	DelayDays           int     // 遅延日数

	ComputedRiskLevel RiskLevel // リスクレベル
	RiskComment       string    // リスクコメント
}

// Enrich derives the full indicator set for every row. Pure in its inputs
// and today; no row is ever dropped — rows with missing dates or amounts
// simply carry zeroed derived fields. Calling twice with the same inputs
// yields identical output.
func Enrich(projects []Project, today time.Time) []EnrichedProject {
	enriched := make([]EnrichedProject, 0, len(projects))
	for _, p := range projects {
		enriched = append(enriched, enrichOne(p, today))
	}
	return enriched
}

func enrichOne(p Project, today time.Time) EnrichedProject {
	e := EnrichedProject{Project: p}

	if e.ValueChainStage == "" {
		e.ValueChainStage = StageForStatus(p.Status)
	}

	e.GrossProfit = p.OrderAmount - p.PlannedCost
	if p.OrderAmount != 0 {
		e.CostRatioPct = p.PlannedCost / p.OrderAmount * 100
	}
	e.OrderVariance = p.OrderAmount - p.OrderPlannedAmount
	e.BudgetVariance = p.PlannedCost - p.BudgetCost
	e.IsOverBudget = e.BudgetVariance > 0
	e.CompletedValue = p.OrderAmount * p.ProgressPct / 100
	e.RealizedGrossProfit = p.OrderAmount - p.ActualCost

	e.ExpectedProgressPct = ExpectedProgress(p.EffectiveStart(), p.PlannedEnd, today)
	e.ProgressVariancePct = p.ProgressPct - e.ExpectedProgressPct
	e.DelayDays = DelayDays(p.PlannedEnd, p.ActualEnd)

	e.ComputedRiskLevel, e.RiskComment = ClassifyRisk(RiskSignals{
		IsOverBudget:     e.IsOverBudget,
		ProgressVariance: e.ProgressVariancePct,
		DelayDays:        e.DelayDays,
		ManualLevel:      p.RiskLevel,
		RiskNote:         p.RiskNote,
	})

	return e
}
