package persistence

import (
	"time"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

func seedDate(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// SampleProjects seeds a fresh data directory with a five-project
// portfolio spanning the 2025 fiscal year.
func SampleProjects() []domain.Project {
	return []domain.Project{
		{
			ID:                  "P001",
			Name:                "高田小学校 体育館 新築 型枠工事",
			Client:              "金子技建",
			ContractorLevel:     "二次",
			Category:            "型枠",
			Status:              "施工中",
			PlannedStart:        seedDate(2025, time.July, 10),
			PlannedEnd:          seedDate(2025, time.October, 30),
			ActualStart:         seedDate(2025, time.July, 12),
			CollectionStart:     seedDate(2025, time.August, 15),
			CollectionEnd:       seedDate(2025, time.November, 30),
			PaymentStart:        seedDate(2025, time.July, 31),
			PaymentEnd:          seedDate(2025, time.December, 15),
			OrderPlannedAmount:  24_000_000,
			OrderAmount:         25_000_000,
			BudgetCost:          18_000_000,
			PlannedCost:         19_000_000,
			ActualCost:          13_500_000,
			GrossMarginPct:      24,
			ProgressPct:         55,
			AvgMonthlyHeadcount: 6,
			Department:          "施工管理部",
			ValueChainStage:     "施工",
			Location:            "福岡",
			Manager:             "山中",
			Partner:             "九州型枠工業",
			RiskLevel:           "中",
			Notes:               "体育館の基礎および型枠一式",
			RiskNote:            "鉄筋納期に注意",
		},
		{
			ID:                  "P002",
			Name:                "熊本・橋脚下部工（P3・フーチング）",
			Client:              "佐藤組",
			ContractorLevel:     "一次",
			Category:            "土木",
			Status:              "施工中",
			PlannedStart:        seedDate(2025, time.August, 1),
			PlannedEnd:          seedDate(2025, time.December, 20),
			ActualStart:         seedDate(2025, time.August, 5),
			CollectionStart:     seedDate(2025, time.September, 1),
			CollectionEnd:       seedDate(2026, time.January, 31),
			PaymentStart:        seedDate(2025, time.August, 31),
			PaymentEnd:          seedDate(2026, time.February, 28),
			OrderPlannedAmount:  33_000_000,
			OrderAmount:         32_000_000,
			BudgetCost:          25_000_000,
			PlannedCost:         24_500_000,
			ActualCost:          16_200_000,
			GrossMarginPct:      23,
			ProgressPct:         48,
			AvgMonthlyHeadcount: 7,
			Department:          "土木部",
			ValueChainStage:     "施工",
			Location:            "熊本",
			Manager:             "近藤",
			Partner:             "熊本土木サービス",
			RiskLevel:           "高",
			Notes:               "河川敷工事の夜間作業あり",
			RiskNote:            "増水時は待機",
		},
		{
			ID:                  "P003",
			Name:                "下大利 5階建（商住複合）",
			Client:              "新宮開発",
			ContractorLevel:     "二次",
			Category:            "建築",
			Status:              "受注",
			PlannedStart:        seedDate(2025, time.September, 15),
			PlannedEnd:          seedDate(2026, time.February, 28),
			CollectionStart:     seedDate(2025, time.October, 1),
			CollectionEnd:       seedDate(2026, time.April, 30),
			PaymentStart:        seedDate(2025, time.September, 30),
			PaymentEnd:          seedDate(2026, time.May, 31),
			OrderPlannedAmount:  57_000_000,
			OrderAmount:         58_000_000,
			BudgetCost:          43_000_000,
			PlannedCost:         44_000_000,
			GrossMarginPct:      24,
			ProgressPct:         10,
			AvgMonthlyHeadcount: 8,
			Department:          "建築部",
			ValueChainStage:     "施工準備",
			Location:            "福岡",
			Manager:             "山中",
			Partner:             "九州建設パートナーズ",
			RiskLevel:           "中",
			Notes:               "地下躯体に注意",
			RiskNote:            "地中障害物調査待ち",
		},
		{
			ID:                  "P004",
			Name:                "みやま市 動物愛護施設（JV）",
			Client:              "金子技建",
			ContractorLevel:     "一次",
			Category:            "建築",
			Status:              "見積",
			PlannedStart:        seedDate(2025, time.November, 15),
			PlannedEnd:          seedDate(2026, time.May, 31),
			CollectionStart:     seedDate(2026, time.January, 15),
			CollectionEnd:       seedDate(2026, time.June, 30),
			PaymentStart:        seedDate(2025, time.November, 30),
			PaymentEnd:          seedDate(2026, time.July, 15),
			OrderPlannedAmount:  58_000_000,
			OrderAmount:         60_000_000,
			BudgetCost:          45_000_000,
			PlannedCost:         46_000_000,
			GrossMarginPct:      23,
			ProgressPct:         5,
			AvgMonthlyHeadcount: 9,
			Department:          "建築部",
			ValueChainStage:     "施工準備",
			Location:            "福岡",
			Manager:             "山中",
			Partner:             "九州建設パートナーズ",
			RiskLevel:           "中",
			Notes:               "JV案件",
			RiskNote:            "JV調整会議が必要",
		},
		{
			ID:                  "P005",
			Name:                "朝倉市 私立病院 新設",
			Client:              "高野組",
			ContractorLevel:     "二次",
			Category:            "建築",
			Status:              "見積",
			PlannedStart:        seedDate(2025, time.December, 1),
			PlannedEnd:          seedDate(2026, time.June, 15),
			CollectionStart:     seedDate(2026, time.February, 1),
			CollectionEnd:       seedDate(2026, time.July, 31),
			PaymentStart:        seedDate(2025, time.December, 31),
			PaymentEnd:          seedDate(2026, time.August, 31),
			OrderPlannedAmount:  47_000_000,
			OrderAmount:         45_000_000,
			BudgetCost:          34_000_000,
			PlannedCost:         35_000_000,
			GrossMarginPct:      22,
			AvgMonthlyHeadcount: 7,
			Department:          "医療PJ室",
			ValueChainStage:     "原材料調達",
			Location:            "福岡",
			Manager:             "近藤",
			Partner:             "九州医療建設",
			RiskLevel:           "中",
			Notes:               "未定要素あり",
			RiskNote:            "医療機器仕様待ち",
		},
	}
}
