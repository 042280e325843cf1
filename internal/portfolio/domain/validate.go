package domain

import (
	"fmt"
	"strings"
)

// amountColumns are checked for negative values in the order the
// messages are reported.
var amountColumns = []struct {
	name  string
	value func(*Project) float64
}{
	{"受注予定額", func(p *Project) float64 { return p.OrderPlannedAmount }},
	{"受注金額", func(p *Project) float64 { return p.OrderAmount }},
	{"予算原価", func(p *Project) float64 { return p.BudgetCost }},
	{"予定原価", func(p *Project) float64 { return p.PlannedCost }},
	{"実績原価", func(p *Project) float64 { return p.ActualCost }},
}

// ValidateProjects checks a project list before it is persisted. It
// returns every violation it finds: dataset-level messages first, then
// per-row date and range checks keyed by 1-based row number.
func ValidateProjects(projects []Project) (bool, []string) {
	var errs []string

	blankID := false
	seen := make(map[string]bool)
	duplicateID := false
	for i := range projects {
		id := strings.TrimSpace(projects[i].ID)
		if id == "" {
			blankID = true
			continue
		}
		if seen[id] {
			duplicateID = true
		}
		seen[id] = true
	}
	if blankID {
		errs = append(errs, "id は必須です。")
	}
	if duplicateID {
		errs = append(errs, "id が重複しています。重複しないようにしてください。")
	}

	for _, col := range amountColumns {
		for i := range projects {
			if col.value(&projects[i]) < 0 {
				errs = append(errs, fmt.Sprintf("%s は 0 以上にしてください。", col.name))
				break
			}
		}
	}

	for i := range projects {
		if projects[i].ProgressPct < 0 || projects[i].ProgressPct > 100 {
			errs = append(errs, "進捗率は 0〜100 の範囲にしてください。")
			break
		}
	}

	for i := range projects {
		if level := projects[i].RiskLevel; level != "" && !level.IsValid() {
			errs = append(errs, "リスク度合いは 空白 または 低/中/高 のいずれかにしてください。")
			break
		}
	}

	for i := range projects {
		p := &projects[i]
		row := i + 1
		if p.PlannedStart == nil || p.PlannedEnd == nil {
			errs = append(errs, fmt.Sprintf("行 %d: 着工日・竣工日は必須です。", row))
			continue
		}
		if p.PlannedEnd.Before(*p.PlannedStart) {
			errs = append(errs, fmt.Sprintf("行 %d: 竣工日は着工日以降にしてください。", row))
		}
		if p.ActualStart != nil && p.ActualEnd != nil && p.ActualEnd.Before(*p.ActualStart) {
			errs = append(errs, fmt.Sprintf("行 %d: 実際竣工日は実際着工日以降にしてください。", row))
		}
		if p.CollectionStart != nil && p.CollectionEnd != nil && p.CollectionEnd.Before(*p.CollectionStart) {
			errs = append(errs, fmt.Sprintf("行 %d: 回収終了日は回収開始日以降にしてください。", row))
		}
		if p.PaymentStart != nil && p.PaymentEnd != nil && p.PaymentEnd.Before(*p.PaymentStart) {
			errs = append(errs, fmt.Sprintf("行 %d: 支払終了日は支払開始日以降にしてください。", row))
		}
		if p.GrossMarginPct < -100 || p.GrossMarginPct > 100 {
			errs = append(errs, fmt.Sprintf("行 %d: 粗利率は -100〜100 の範囲にしてください。", row))
		}
	}

	return len(errs) == 0, errs
}
