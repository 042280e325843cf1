package domain

import (
	"time"

	sharedDomain "github.com/genbaworks/genba/internal/shared/domain"
)

// Metrics summarizes one scenario for the comparison table.
type Metrics struct {
	TaskCount        int
	DurationDays     int     // earliest start to latest finish, inclusive
	AvgProgressPct   float64 // 平均進捗率
	TotalBudget      float64 // 総予算
	TotalActual      float64 // 総実績
	CostVariance     float64 // 総実績 − 総予算
	CriticalTask     string  // longest task, "-" when none
	CriticalDuration int
	StartDate        string // "-" when no task carries a start
	EndDate          string
}

// Summarize derives the comparison metrics from the scenario's tasks.
// The critical task is the one with the longest inclusive duration;
// ties keep the first occurrence.
func (s *Scenario) Summarize() Metrics {
	if len(s.Tasks) == 0 {
		return Metrics{CriticalTask: "-", StartDate: "-", EndDate: "-"}
	}

	m := Metrics{
		TaskCount:    len(s.Tasks),
		CriticalTask: "-",
		StartDate:    "-",
		EndDate:      "-",
	}

	var minStart, maxFinish *time.Time
	progressSum := 0.0
	criticalIdx := -1
	criticalDuration := 0

	for i, task := range s.Tasks {
		progressSum += task.ProgressPct
		m.TotalBudget += task.CostBudget
		m.TotalActual += task.CostActual

		duration := 0
		if task.Start != nil && task.Finish != nil {
			duration = sharedDomain.DaysBetween(*task.Start, *task.Finish) + 1
		}
		if criticalIdx < 0 || duration > criticalDuration {
			criticalIdx = i
			criticalDuration = duration
		}

		if task.Start != nil && (minStart == nil || task.Start.Before(*minStart)) {
			minStart = task.Start
		}
		if task.Finish != nil && (maxFinish == nil || task.Finish.After(*maxFinish)) {
			maxFinish = task.Finish
		}
	}

	m.AvgProgressPct = progressSum / float64(len(s.Tasks))
	m.CostVariance = m.TotalActual - m.TotalBudget

	if criticalIdx >= 0 {
		m.CriticalTask = s.Tasks[criticalIdx].Name
		if criticalDuration > 0 {
			m.CriticalDuration = criticalDuration
		}
	}

	if minStart != nil {
		m.StartDate = minStart.Format("2006-01-02")
	}
	if maxFinish != nil {
		m.EndDate = maxFinish.Format("2006-01-02")
	}
	if minStart != nil && maxFinish != nil {
		m.DurationDays = sharedDomain.DaysBetween(*minStart, *maxFinish) + 1
	}

	return m
}
