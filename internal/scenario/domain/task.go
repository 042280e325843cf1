// Package domain contains the domain model for the scenario bounded
// context: named what-if schedules made of tasks, their summary metrics
// and value-chain cost rollups.
package domain

import (
	"context"
	"strings"
	"time"
)

// RiskLevels is the allowed task risk vocabulary in ascending severity.
var RiskLevels = []string{"低", "中", "高"}

// DefaultRiskLevel backfills tasks stored without an assessment.
const DefaultRiskLevel = "低"

// ValueChainStages lists the cost rollup buckets in lifecycle order.
var ValueChainStages = []string{"原材料調達", "施工準備", "施工", "検査", "引き渡し"}

// Task is one scheduled work item inside a scenario. Dates are calendar
// days (midnight UTC); nil means unset.
type Task struct {
	Name       string
	Start      *time.Time
	Finish     *time.Time
	Resource   string
	Department string
	ValueChain string

	ProgressPct float64
	CostBudget  float64
	CostActual  float64
	RiskLevel   string
}

// Scenario is a named task list used for plan comparison. Order is
// significant both for tasks and for the scenario list itself.
type Scenario struct {
	Name  string
	Tasks []Task
}

// Repository is the storage port for the scenario table. Implementations
// must preserve scenario order across load/save cycles.
type Repository interface {
	LoadAll(ctx context.Context) ([]Scenario, error)
	SaveAll(ctx context.Context, scenarios []Scenario) error
}

// FindScenario returns the scenario with the given name.
func FindScenario(scenarios []Scenario, name string) (*Scenario, error) {
	for i := range scenarios {
		if scenarios[i].Name == name {
			return &scenarios[i], nil
		}
	}
	return nil, ErrScenarioNotFound
}

// TaskUpdate carries the editable fields of a task progress update.
type TaskUpdate struct {
	ProgressPct float64
	CostActual  float64
	RiskLevel   string
}

// UpdateTask applies the update to the first task with the given name.
func (s *Scenario) UpdateTask(taskName string, update TaskUpdate) error {
	for i := range s.Tasks {
		if s.Tasks[i].Name != taskName {
			continue
		}
		s.Tasks[i].ProgressPct = update.ProgressPct
		s.Tasks[i].CostActual = update.CostActual
		if update.RiskLevel != "" {
			s.Tasks[i].RiskLevel = update.RiskLevel
		}
		return nil
	}
	return ErrTaskNotFound
}

// AddTask appends a task to the scenario. The task name must be
// non-blank.
func (s *Scenario) AddTask(task Task) error {
	if strings.TrimSpace(task.Name) == "" {
		return ErrEmptyTaskName
	}
	if task.RiskLevel == "" {
		task.RiskLevel = DefaultRiskLevel
	}
	s.Tasks = append(s.Tasks, task)
	return nil
}

// StageCost is the budget/actual cost pair for one value-chain stage.
type StageCost struct {
	Stage      string
	CostBudget float64
	CostActual float64
}

// CostByStage sums task costs into the five value-chain stages, in
// lifecycle order. Tasks tagged with an unknown stage are dropped; every
// stage appears even when empty.
func (s *Scenario) CostByStage() []StageCost {
	totals := make(map[string]*StageCost, len(ValueChainStages))
	costs := make([]StageCost, len(ValueChainStages))
	for i, stage := range ValueChainStages {
		costs[i] = StageCost{Stage: stage}
		totals[stage] = &costs[i]
	}
	for _, task := range s.Tasks {
		bucket, ok := totals[task.ValueChain]
		if !ok {
			continue
		}
		bucket.CostBudget += task.CostBudget
		bucket.CostActual += task.CostActual
	}
	return costs
}

// HasStageCosts reports whether any stage carries a non-zero cost.
func HasStageCosts(costs []StageCost) bool {
	for _, c := range costs {
		if c.CostBudget != 0 || c.CostActual != 0 {
			return true
		}
	}
	return false
}
