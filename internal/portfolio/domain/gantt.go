package domain

import (
	"time"

	sharedDomain "github.com/genbaworks/genba/internal/shared/domain"
	"github.com/genbaworks/genba/pkg/branding"
)

// GanttBar is one project's bar on the per-project Gantt chart.
type GanttBar struct {
	Name         string
	Start        time.Time
	End          time.Time
	DurationDays int
	Color        string
	ShowLegend   bool
}

// Gantt is the per-project Gantt chart layout: one row per project with
// a valid planned span, with a data-driven month axis.
type Gantt struct {
	Bars []GanttBar
	Axis sharedDomain.AxisMarks
}

// BuildGantt lays out the Gantt chart over the planned spans. Rows with
// a missing or inverted span are dropped; when none survive it returns
// ErrNoValidDates. Colors cycle through the brand colorway by project
// name in first-seen order, and the legend shows each name once.
func BuildGantt(rows []EnrichedProject) (Gantt, error) {
	type span struct {
		name       string
		start, end time.Time
	}
	var spans []span
	var ranges []sharedDomain.DateRange
	for i := range rows {
		row := &rows[i]
		if row.PlannedStart == nil || row.PlannedEnd == nil || row.PlannedEnd.Before(*row.PlannedStart) {
			continue
		}
		spans = append(spans, span{row.Name, *row.PlannedStart, *row.PlannedEnd})
		ranges = append(ranges, sharedDomain.DateRange{Start: row.PlannedStart, End: row.PlannedEnd})
	}
	if len(spans) == 0 {
		return Gantt{}, sharedDomain.ErrNoValidDates
	}

	axis, err := sharedDomain.BuildGanttAxisMarks(ranges)
	if err != nil {
		return Gantt{}, err
	}

	colors := make(map[string]string)
	legendDrawn := make(map[string]bool)
	gantt := Gantt{Axis: axis}
	for _, s := range spans {
		color, ok := colors[s.name]
		if !ok {
			color = branding.Colorway[len(colors)%len(branding.Colorway)]
			colors[s.name] = color
		}
		gantt.Bars = append(gantt.Bars, GanttBar{
			Name:         s.name,
			Start:        s.start,
			End:          s.end,
			DurationDays: sharedDomain.DaysBetween(s.start, s.end) + 1,
			Color:        color,
			ShowLegend:   !legendDrawn[s.name],
		})
		legendDrawn[s.name] = true
	}
	return gantt, nil
}
