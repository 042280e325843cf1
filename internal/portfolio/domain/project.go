package domain

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Project is one construction project row, the table of record. Dates are
// calendar days (midnight UTC); nil means unset. Monetary amounts are yen.
type Project struct {
	ID              string
	Name            string
	Client          string
	ContractorLevel string
	Category        string
	Status          Status

	PlannedStart *time.Time
	PlannedEnd   *time.Time
	ActualStart  *time.Time
	ActualEnd    *time.Time

	OrderPlannedAmount float64
	OrderAmount        float64
	BudgetCost         float64
	PlannedCost        float64
	ActualCost         float64
	GrossMarginPct     float64
	ProgressPct        float64

	AvgMonthlyHeadcount float64

	Department      string
	ValueChainStage ValueChainStage

	CollectionStart *time.Time
	CollectionEnd   *time.Time
	PaymentStart    *time.Time
	PaymentEnd      *time.Time

	Location string
	Manager  string
	Partner  string

	RiskLevel      RiskLevel // stored manual assessment, may be empty
	DependencyNote string
	Notes          string
	RiskNote       string
}

// EffectiveStart resolves the start date used for schedule-derived
// metrics: the planned start, falling back to the actual one.
func (p *Project) EffectiveStart() *time.Time {
	if p.PlannedStart != nil {
		return p.PlannedStart
	}
	return p.ActualStart
}

// Repository is the storage port for the project table.
type Repository interface {
	// LoadAll returns every project in stored order.
	LoadAll(ctx context.Context) ([]Project, error)
	// SaveAll replaces the table with the given rows.
	SaveAll(ctx context.Context, projects []Project) error
}

var projectIDPattern = regexp.MustCompile(`^P(\d+)`)

// NextProjectID generates the next sequential project ID ("P001", "P002",
// ...) after the highest numeric suffix among the existing IDs.
func NextProjectID(existing []string) string {
	maxValue := 0
	for _, raw := range existing {
		match := projectIDPattern.FindStringSubmatch(strings.TrimSpace(raw))
		if match == nil {
			continue
		}
		if n, err := strconv.Atoi(match[1]); err == nil && n > maxValue {
			maxValue = n
		}
	}
	return fmt.Sprintf("P%03d", maxValue+1)
}

// MergeProjects overlays incoming rows onto the current table: rows with
// a matching ID are replaced in place, new IDs are appended in incoming
// order.
func MergeProjects(current, incoming []Project) []Project {
	byID := make(map[string]int, len(current))
	merged := make([]Project, len(current))
	copy(merged, current)
	for i := range merged {
		byID[merged[i].ID] = i
	}
	for _, p := range incoming {
		if i, ok := byID[p.ID]; ok {
			merged[i] = p
			continue
		}
		byID[p.ID] = len(merged)
		merged = append(merged, p)
	}
	return merged
}
