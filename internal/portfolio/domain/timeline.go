package domain

import (
	"fmt"
	"time"

	sharedDomain "github.com/genbaworks/genba/internal/shared/domain"
	"github.com/genbaworks/genba/pkg/branding"
)

// TimelineBar is the geometry and styling of one horizontal bar on the
// fiscal-year timeline.
type TimelineBar struct {
	ProjectID string
	Name      string

	Start        time.Time
	End          time.Time
	DurationDays int

	FillColor   string
	BorderColor string // empty when the row carries no elevated risk
	LabelColor  string
	Opacity     float64

	ProgressLabel string
	RiskMarker    string // ⚠️ for 高, △ for 中

	Legend     string
	ShowLegend bool
}

// Timeline is a fully laid-out fiscal-year chart: bars, axis scaffolding
// and the today marker when it falls inside the domain.
type Timeline struct {
	Bars  []TimelineBar
	Axis  sharedDomain.AxisMarks
	Today *time.Time
}

// BuildTimeline lays out one bar per project with a valid planned span.
// Bar opacity scales with relative duration, the border encodes computed
// risk, and the label color keeps the progress text legible on the fill.
// Rows without plottable dates still contribute to the axis domain.
func BuildTimeline(rows []EnrichedProject, f FilterState, fallbackStart, fallbackEnd time.Time, today time.Time) Timeline {
	colorKey := f.ColorKey
	colorMap := branding.ColorMap(columnValues(rows, colorKey), colorKey, f.BarColor)

	minDuration, maxDuration := durationBounds(rows)

	legendDrawn := make(map[string]bool)
	var bars []TimelineBar
	for i := range rows {
		row := &rows[i]
		if row.PlannedStart == nil || row.PlannedEnd == nil {
			continue
		}
		duration := sharedDomain.DaysInclusive(row.PlannedStart, row.PlannedEnd)
		if duration <= 0 {
			continue
		}

		legend := row.ColumnValue(colorKey)
		if legend == "" {
			legend = branding.UnsetLabel
		}
		fill, ok := colorMap[legend]
		if !ok {
			fill = f.BarColor
		}

		bar := TimelineBar{
			ProjectID:     row.ID,
			Name:          row.Name,
			Start:         *row.PlannedStart,
			End:           *row.PlannedEnd,
			DurationDays:  duration,
			FillColor:     fill,
			BorderColor:   riskBorderColor(row.ComputedRiskLevel),
			LabelColor:    branding.ContrastingTextColor(fill),
			Opacity:       barOpacity(duration, minDuration, maxDuration),
			ProgressLabel: fmt.Sprintf("%.0f%%", row.ProgressPct),
			RiskMarker:    riskMarker(row.ComputedRiskLevel),
			Legend:        legend,
			ShowLegend:    !legendDrawn[legend],
		}
		legendDrawn[legend] = true
		bars = append(bars, bar)
	}

	axis := sharedDomain.BuildAxisMarks(plannedRanges(rows), fallbackStart, fallbackEnd)

	timeline := Timeline{Bars: bars, Axis: axis}
	if axis.Contains(sharedDomain.Truncate(today)) {
		t := sharedDomain.Truncate(today)
		timeline.Today = &t
	}
	return timeline
}

// ScheduleBar pairs a project's planned span with its actual one for the
// planned-versus-actual schedule chart.
type ScheduleBar struct {
	ProjectID string
	Name      string

	PlannedStart time.Time
	PlannedEnd   time.Time
	DurationDays int

	ActualStart        *time.Time
	ActualEnd          *time.Time
	ActualDurationDays int
}

// Schedule is the planned-versus-actual chart layout.
type Schedule struct {
	Bars  []ScheduleBar
	Axis  sharedDomain.AxisMarks
	Today *time.Time
}

// BuildSchedule lays out planned bars with actual-span outlines where
// both actual dates are present.
func BuildSchedule(rows []EnrichedProject, fallbackStart, fallbackEnd time.Time, today time.Time) Schedule {
	var bars []ScheduleBar
	for i := range rows {
		row := &rows[i]
		if row.PlannedStart == nil || row.PlannedEnd == nil {
			continue
		}
		duration := sharedDomain.DaysInclusive(row.PlannedStart, row.PlannedEnd)
		if duration <= 0 {
			continue
		}

		bar := ScheduleBar{
			ProjectID:    row.ID,
			Name:         row.Name,
			PlannedStart: *row.PlannedStart,
			PlannedEnd:   *row.PlannedEnd,
			DurationDays: duration,
		}
		if row.ActualStart != nil && row.ActualEnd != nil {
			if actual := sharedDomain.DaysInclusive(row.ActualStart, row.ActualEnd); actual > 0 {
				bar.ActualStart = row.ActualStart
				bar.ActualEnd = row.ActualEnd
				bar.ActualDurationDays = actual
			}
		}
		bars = append(bars, bar)
	}

	axis := sharedDomain.BuildAxisMarks(plannedRanges(rows), fallbackStart, fallbackEnd)

	schedule := Schedule{Bars: bars, Axis: axis}
	if axis.Contains(sharedDomain.Truncate(today)) {
		t := sharedDomain.Truncate(today)
		schedule.Today = &t
	}
	return schedule
}

func plannedRanges(rows []EnrichedProject) []sharedDomain.DateRange {
	ranges := make([]sharedDomain.DateRange, 0, len(rows))
	for i := range rows {
		ranges = append(ranges, sharedDomain.DateRange{
			Start: rows[i].PlannedStart,
			End:   rows[i].PlannedEnd,
		})
	}
	return ranges
}

func columnValues(rows []EnrichedProject, column string) []string {
	values := make([]string, 0, len(rows))
	for i := range rows {
		values = append(values, rows[i].ColumnValue(column))
	}
	return values
}

func durationBounds(rows []EnrichedProject) (int, int) {
	minDuration, maxDuration := 0, 0
	for i := range rows {
		d := sharedDomain.DaysInclusive(rows[i].PlannedStart, rows[i].PlannedEnd)
		if d <= 0 {
			continue
		}
		if minDuration == 0 || d < minDuration {
			minDuration = d
		}
		if d > maxDuration {
			maxDuration = d
		}
	}
	return minDuration, maxDuration
}

// barOpacity maps relative duration onto 0.55..0.95 so longer projects
// read heavier; a flat 0.85 when all durations are equal.
func barOpacity(duration, minDuration, maxDuration int) float64 {
	if maxDuration > 0 && minDuration != maxDuration {
		return 0.55 + 0.4*float64(duration-minDuration)/float64(maxDuration-minDuration)
	}
	return 0.85
}

func riskBorderColor(level RiskLevel) string {
	switch level {
	case RiskHigh:
		return branding.Crimson
	case RiskMedium:
		return branding.Gold
	default:
		return ""
	}
}

func riskMarker(level RiskLevel) string {
	switch level {
	case RiskHigh:
		return "⚠️"
	case RiskMedium:
		return "△"
	default:
		return ""
	}
}
