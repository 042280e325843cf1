package domain

import (
	"strings"
	"time"
)

// FilterMode selects how the facet filters combine.
type FilterMode string

const (
	// FilterModeAnd keeps rows matching every selected facet.
	FilterModeAnd FilterMode = "AND"
	// FilterModeOr keeps rows matching any selected facet.
	FilterModeOr FilterMode = "OR"
)

// Column names usable as filter search targets and chart color keys.
// These mirror the stored CSV headers.
const (
	ColumnName            = "案件名"
	ColumnClient          = "得意先"
	ColumnContractorLevel = "元請区分"
	ColumnCategory        = "工種"
	ColumnStatus          = "ステータス"
	ColumnDepartment      = "担当部署"
	ColumnValueChain      = "バリューチェーン工程"
	ColumnLocation        = "現場所在地"
	ColumnManager         = "担当者"
	ColumnPartner         = "協力会社"
	ColumnRiskLevel       = "リスクレベル"
)

// DefaultSearchTargets are the columns text search scans when none are
// selected.
var DefaultSearchTargets = []string{ColumnName, ColumnClient}

// FilterState captures the control panel: facet selections, the period
// window, text search and chart presentation options.
type FilterState struct {
	FiscalYear int

	PeriodFrom *time.Time
	PeriodTo   *time.Time

	Status          []string
	Category        []string
	ContractorLevel []string
	Client          []string
	Manager         []string
	Location        []string

	MarginMin float64
	MarginMax float64
	HasMargin bool

	Mode          FilterMode
	SearchText    string
	SearchTargets []string

	// Chart presentation
	ColorKey     string
	ShowGrid     bool
	LabelDensity string
	BarColor     string
}

// Apply filters the enriched rows. Period and margin constraints always
// apply; the facet selections combine per Mode; text search scans the
// target columns case-insensitively. In OR mode a search matching every
// candidate row carries no information and stays out of the facet union.
func (f FilterState) Apply(rows []EnrichedProject) []EnrichedProject {
	searchConstrains := f.searchConstrains(rows)
	result := make([]EnrichedProject, 0, len(rows))
	for _, row := range rows {
		if f.keeps(&row, searchConstrains) {
			result = append(result, row)
		}
	}
	return result
}

// searchConstrains reports whether the text search rejects at least one
// row surviving the period and margin pass. Only OR mode cares: there a
// universal match must not flood the facet union.
func (f FilterState) searchConstrains(rows []EnrichedProject) bool {
	if strings.TrimSpace(f.SearchText) == "" {
		return false
	}
	if f.Mode != FilterModeOr {
		return true
	}
	for i := range rows {
		row := &rows[i]
		if !f.passesWindow(row) {
			continue
		}
		if !f.matchesSearch(row) {
			return true
		}
	}
	return false
}

func (f FilterState) passesWindow(row *EnrichedProject) bool {
	if f.PeriodFrom != nil {
		if row.PlannedEnd == nil || row.PlannedEnd.Before(*f.PeriodFrom) {
			return false
		}
	}
	if f.PeriodTo != nil {
		if row.PlannedStart == nil || row.PlannedStart.After(*f.PeriodTo) {
			return false
		}
	}
	if f.HasMargin {
		if row.GrossMarginPct < f.MarginMin || row.GrossMarginPct > f.MarginMax {
			return false
		}
	}
	return true
}

func (f FilterState) keeps(row *EnrichedProject, searchConstrains bool) bool {
	if !f.passesWindow(row) {
		return false
	}

	facets := []struct {
		selected []string
		value    string
	}{
		{f.Status, row.Status.String()},
		{f.Category, row.Category},
		{f.ContractorLevel, row.ContractorLevel},
		{f.Client, row.Client},
		{f.Manager, row.Manager},
		{f.Location, row.Location},
	}

	if f.Mode == FilterModeOr {
		anySelected := false
		for _, facet := range facets {
			if len(facet.selected) == 0 {
				continue
			}
			anySelected = true
			if contains(facet.selected, facet.value) {
				return true
			}
		}
		// Text search joins the OR set only when it actually constrains.
		if searchConstrains {
			anySelected = true
			if f.matchesSearch(row) {
				return true
			}
		}
		return !anySelected
	}

	for _, facet := range facets {
		if len(facet.selected) > 0 && !contains(facet.selected, facet.value) {
			return false
		}
	}
	return f.matchesSearch(row)
}

func (f FilterState) matchesSearch(row *EnrichedProject) bool {
	text := strings.ToLower(strings.TrimSpace(f.SearchText))
	if text == "" {
		return true
	}
	targets := f.SearchTargets
	if len(targets) == 0 {
		targets = DefaultSearchTargets
	}
	for _, column := range targets {
		if strings.Contains(strings.ToLower(row.ColumnValue(column)), text) {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// ColumnValue returns the row's value for a stored or derived column
// name. Unknown columns yield an empty string.
func (e *EnrichedProject) ColumnValue(column string) string {
	switch column {
	case ColumnName:
		return e.Name
	case ColumnClient:
		return e.Client
	case ColumnContractorLevel:
		return e.ContractorLevel
	case ColumnCategory:
		return e.Category
	case ColumnStatus:
		return e.Status.String()
	case ColumnDepartment:
		return e.Department
	case ColumnValueChain:
		return e.ValueChainStage.String()
	case ColumnLocation:
		return e.Location
	case ColumnManager:
		return e.Manager
	case ColumnPartner:
		return e.Partner
	case ColumnRiskLevel:
		return e.ComputedRiskLevel.String()
	default:
		return ""
	}
}
