package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrNoValidDates indicates no range carried a usable start/end pair.
var ErrNoValidDates = errors.New("no rows with valid start and end dates")

// domainBufferDays pads the plotted data on each side before snapping the
// domain outward to whole calendar months.
const domainBufferDays = 3

// AxisMarks holds the tick scaffolding for a date axis: month-start major
// marks, day-of-month minor marks, and a month-aligned drawing domain.
type AxisMarks struct {
	Major       []time.Time
	MajorLabels []string
	Minor       []time.Time
	MinorLabels []string

	DomainStart time.Time
	DomainEnd   time.Time
}

// TickPositions returns the sorted union of major and minor marks with
// duplicates removed.
func (m AxisMarks) TickPositions() []time.Time {
	seen := make(map[time.Time]struct{}, len(m.Major)+len(m.Minor))
	combined := make([]time.Time, 0, len(m.Major)+len(m.Minor))
	for _, mark := range append(append([]time.Time{}, m.Major...), m.Minor...) {
		if _, ok := seen[mark]; ok {
			continue
		}
		seen[mark] = struct{}{}
		combined = append(combined, mark)
	}
	sort.Slice(combined, func(i, j int) bool { return combined[i].Before(combined[j]) })
	return combined
}

// TickLabels returns labels positionally aligned with TickPositions.
// Minor labels overwrite major ones on collision; marks with no label get
// an empty string.
func (m AxisMarks) TickLabels() []string {
	labelMap := make(map[time.Time]string, len(m.Major)+len(m.Minor))
	for i, mark := range m.Major {
		labelMap[mark] = m.MajorLabels[i]
	}
	for i, mark := range m.Minor {
		labelMap[mark] = m.MinorLabels[i]
	}

	ticks := m.TickPositions()
	labels := make([]string, len(ticks))
	for i, mark := range ticks {
		labels[i] = labelMap[mark]
	}
	return labels
}

// Contains reports whether the date lies within the drawing domain.
func (m AxisMarks) Contains(t time.Time) bool {
	return !t.Before(m.DomainStart) && !t.After(m.DomainEnd)
}

// BuildAxisMarks computes the tick marks and drawing domain for a
// timeline covering the given date ranges. The fallback range always
// participates in the domain, so a data-empty chart still renders the
// fiscal year. The domain is the union of data and fallback, padded by
// three days and snapped outward to whole calendar months.
func BuildAxisMarks(ranges []DateRange, fallbackStart, fallbackEnd time.Time) AxisMarks {
	start := Truncate(fallbackStart)
	end := Truncate(fallbackEnd)

	for _, r := range ranges {
		if r.Start != nil {
			if s := Truncate(*r.Start); s.Before(start) {
				start = s
			}
		}
		if r.End != nil {
			if e := Truncate(*r.End); e.After(end) {
				end = e
			}
		}
	}
	if start.After(end) {
		end = start
	}

	domainStart := MonthStart(start.AddDate(0, 0, -domainBufferDays))
	domainEnd := MonthEnd(end.AddDate(0, 0, domainBufferDays))

	return buildMarks(domainStart, domainEnd, monthLabel, true)
}

// BuildGanttAxisMarks is the variant used by the per-project Gantt chart:
// the domain comes from the data alone (no fallback, no buffer), major
// labels use the YYYY/MM form, and minor marks carry no labels.
func BuildGanttAxisMarks(ranges []DateRange) (AxisMarks, error) {
	var start, end *time.Time
	for _, r := range ranges {
		if r.Start != nil {
			s := Truncate(*r.Start)
			if start == nil || s.Before(*start) {
				start = &s
			}
		}
		if r.End != nil {
			e := Truncate(*r.End)
			if end == nil || e.After(*end) {
				end = &e
			}
		}
	}
	if start == nil || end == nil {
		return AxisMarks{}, ErrNoValidDates
	}

	domainStart := MonthStart(*start)
	domainEnd := MonthEnd(*end)

	return buildMarks(domainStart, domainEnd, yearMonthLabel, false), nil
}

func monthLabel(monthStart time.Time) string {
	return fmt.Sprintf("%d月", int(monthStart.Month()))
}

func yearMonthLabel(monthStart time.Time) string {
	return monthStart.Format("2006/01")
}

func buildMarks(domainStart, domainEnd time.Time, majorLabel func(time.Time) string, labelMinors bool) AxisMarks {
	marks := AxisMarks{DomainStart: domainStart, DomainEnd: domainEnd}

	type minorCandidate struct {
		mark  time.Time
		label string
	}
	var minors []minorCandidate

	for _, monthStart := range MonthStarts(domainStart, domainEnd) {
		monthEnd := MonthEnd(monthStart)
		marks.Major = append(marks.Major, monthStart)
		marks.MajorLabels = append(marks.MajorLabels, majorLabel(monthStart))

		for _, dayOfMonth := range []int{6, 12, 18, 24} {
			candidate := monthStart.AddDate(0, 0, dayOfMonth-1)
			if candidate.Before(domainStart) || candidate.After(domainEnd) || candidate.After(monthEnd) {
				continue
			}
			label := ""
			if labelMinors {
				label = fmt.Sprintf("%d日", dayOfMonth)
			}
			minors = append(minors, minorCandidate{candidate, label})
		}

		if !monthEnd.Before(domainStart) && !monthEnd.After(domainEnd) {
			label := ""
			if labelMinors {
				label = "月末"
			}
			minors = append(minors, minorCandidate{monthEnd, label})
		}
	}

	// Deduplicate minors: the month-end label is generated after the
	// day-of-month ones, and the later write wins on collision.
	dedup := make(map[time.Time]string, len(minors))
	for _, c := range minors {
		dedup[c.mark] = c.label
	}
	sorted := make([]time.Time, 0, len(dedup))
	for mark := range dedup {
		sorted = append(sorted, mark)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	for _, mark := range sorted {
		marks.Minor = append(marks.Minor, mark)
		marks.MinorLabels = append(marks.MinorLabels, dedup[mark])
	}

	return marks
}
