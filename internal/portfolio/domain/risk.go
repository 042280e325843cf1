package domain

import (
	"fmt"
	"time"

	sharedDomain "github.com/genbaworks/genba/internal/shared/domain"
)

// RiskLevel is the three-tier risk classification. The empty string means
// no assessment has been stored.
type RiskLevel string

const (
	RiskLow    RiskLevel = "低"
	RiskMedium RiskLevel = "中"
	RiskHigh   RiskLevel = "高"
)

// String returns the string representation of the risk level.
func (r RiskLevel) String() string {
	return string(r)
}

// IsValid returns true if the level is a known value.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// rank orders levels for severity comparison: 低 < 中 < 高.
func (r RiskLevel) rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	default:
		return -1
	}
}

// Exceeds returns true if r is strictly more severe than other.
func (r RiskLevel) Exceeds(other RiskLevel) bool {
	return r.rank() > other.rank()
}

// RiskSignals are the inputs to risk classification, all derived from a
// single project row.
type RiskSignals struct {
	IsOverBudget     bool
	ProgressVariance float64
	DelayDays        int
	ManualLevel      RiskLevel
	RiskNote         string
}

// stableComment is returned when no rule produced a reason.
const stableComment = "安定"

// ClassifyRisk evaluates the ordered rule set over the signals and
// returns the resulting level and comment. Severity only ever increases
// during evaluation; the comment joins the distinct reasons in the order
// the rules fired.
func ClassifyRisk(signals RiskSignals) (RiskLevel, string) {
	level := RiskLow
	var reasons []string

	raise := func(to RiskLevel) {
		if to.Exceeds(level) {
			level = to
		}
	}

	if signals.IsOverBudget {
		raise(RiskHigh)
		reasons = append(reasons, "予算超過")
	}

	if signals.ProgressVariance < -30 {
		raise(RiskHigh)
		reasons = append(reasons, "進捗大幅遅れ")
	} else if signals.ProgressVariance < -10 && RiskMedium.Exceeds(level) {
		raise(RiskMedium)
		reasons = append(reasons, "進捗遅れ")
	}

	if signals.DelayDays > 0 {
		raise(RiskHigh)
		reasons = append(reasons, fmt.Sprintf("遅延%d日", signals.DelayDays))
	}

	if signals.ManualLevel.IsValid() {
		raise(signals.ManualLevel)
		// The annotation is recorded even when the manual level did not
		// raise the computed one.
		if signals.ManualLevel != RiskLow {
			reasons = append(reasons, fmt.Sprintf("手動評価:%s", signals.ManualLevel))
		}
	}

	if len(reasons) == 0 && signals.RiskNote != "" {
		level = RiskMedium
		reasons = append(reasons, signals.RiskNote)
	}

	comment := joinUnique(reasons)
	if comment == "" {
		comment = stableComment
	}
	return level, comment
}

// joinUnique joins reasons with 、 dropping duplicates while preserving
// first-seen order.
func joinUnique(reasons []string) string {
	seen := make(map[string]struct{}, len(reasons))
	out := ""
	for _, r := range reasons {
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		if out != "" {
			out += "、"
		}
		out += r
	}
	return out
}

// ExpectedProgress returns the schedule-implied progress percentage for
// today, linearly interpolated over [start, end). 0 when the span is
// missing or empty, 0 at or before the start, 100 at or after the end.
func ExpectedProgress(start, end *time.Time, today time.Time) float64 {
	if start == nil || end == nil || !start.Before(*end) {
		return 0
	}
	if !today.After(*start) {
		return 0
	}
	if !today.Before(*end) {
		return 100
	}
	totalDays := sharedDomain.DaysBetween(*start, *end)
	elapsedDays := sharedDomain.DaysBetween(*start, today)
	pct := float64(elapsedDays) / float64(totalDays) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// DelayDays counts how many days the actual completion overran the
// planned one. 0 when either date is missing or the project finished on
// time or early.
func DelayDays(plannedEnd, actualEnd *time.Time) int {
	if plannedEnd == nil || actualEnd == nil {
		return 0
	}
	delay := sharedDomain.DaysBetween(*plannedEnd, *actualEnd)
	if delay < 0 {
		return 0
	}
	return delay
}
