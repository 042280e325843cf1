package domain

import "time"

func seedDate(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// DefaultScenarios seeds the three comparison plans shipped with a fresh
// data directory: the current plan, a compressed variant and an extended
// one.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name: "現行計画",
			Tasks: []Task{
				{
					Name: "基礎工事", Start: seedDate(2025, time.October, 1), Finish: seedDate(2025, time.October, 10),
					Resource: "基礎", Department: "土木部", ValueChain: "施工",
					ProgressPct: 20, CostBudget: 10_000_000, CostActual: 8_000_000, RiskLevel: "中",
				},
				{
					Name: "躯体工事", Start: seedDate(2025, time.October, 11), Finish: seedDate(2025, time.November, 5),
					Resource: "躯体", Department: "施工管理部", ValueChain: "施工",
					ProgressPct: 0, CostBudget: 30_000_000, CostActual: 0, RiskLevel: "中",
				},
				{
					Name: "検査・引渡し準備", Start: seedDate(2025, time.November, 6), Finish: seedDate(2025, time.November, 15),
					Resource: "検査", Department: "品質保証部", ValueChain: "検査",
					ProgressPct: 0, CostBudget: 5_000_000, CostActual: 0, RiskLevel: "低",
				},
			},
		},
		{
			Name: "短縮案",
			Tasks: []Task{
				{
					Name: "基礎工事", Start: seedDate(2025, time.September, 28), Finish: seedDate(2025, time.October, 7),
					Resource: "基礎", Department: "土木部", ValueChain: "施工",
					ProgressPct: 30, CostBudget: 10_500_000, CostActual: 8_400_000, RiskLevel: "中",
				},
				{
					Name: "躯体工事", Start: seedDate(2025, time.October, 8), Finish: seedDate(2025, time.October, 30),
					Resource: "躯体", Department: "施工管理部", ValueChain: "施工",
					ProgressPct: 10, CostBudget: 31_500_000, CostActual: 2_000_000, RiskLevel: "高",
				},
				{
					Name: "内装仕上げ", Start: seedDate(2025, time.October, 31), Finish: seedDate(2025, time.November, 18),
					Resource: "内装", Department: "仕上管理部", ValueChain: "施工",
					ProgressPct: 0, CostBudget: 8_000_000, CostActual: 0, RiskLevel: "中",
				},
				{
					Name: "検査・引渡し", Start: seedDate(2025, time.November, 19), Finish: seedDate(2025, time.November, 27),
					Resource: "検査", Department: "品質保証部", ValueChain: "検査",
					ProgressPct: 0, CostBudget: 4_500_000, CostActual: 0, RiskLevel: "低",
				},
			},
		},
		{
			Name: "延長案",
			Tasks: []Task{
				{
					Name: "基礎工事", Start: seedDate(2025, time.October, 5), Finish: seedDate(2025, time.October, 20),
					Resource: "基礎", Department: "土木部", ValueChain: "施工",
					ProgressPct: 10, CostBudget: 9_500_000, CostActual: 8_200_000, RiskLevel: "低",
				},
				{
					Name: "躯体工事", Start: seedDate(2025, time.October, 21), Finish: seedDate(2025, time.November, 25),
					Resource: "躯体", Department: "施工管理部", ValueChain: "施工",
					ProgressPct: 0, CostBudget: 28_500_000, CostActual: 0, RiskLevel: "中",
				},
				{
					Name: "外構・仕上げ", Start: seedDate(2025, time.November, 26), Finish: seedDate(2025, time.December, 20),
					Resource: "外構", Department: "仕上管理部", ValueChain: "施工",
					ProgressPct: 0, CostBudget: 9_000_000, CostActual: 0, RiskLevel: "中",
				},
				{
					Name: "検査・引渡し", Start: seedDate(2025, time.December, 21), Finish: seedDate(2025, time.December, 30),
					Resource: "検査", Department: "品質保証部", ValueChain: "引き渡し",
					ProgressPct: 0, CostBudget: 5_000_000, CostActual: 0, RiskLevel: "低",
				},
			},
		},
	}
}
