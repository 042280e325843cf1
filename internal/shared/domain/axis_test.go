package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAxisMarks_FallbackOnlyDomain(t *testing.T) {
	marks := BuildAxisMarks(nil, d(2025, time.July, 1), d(2026, time.June, 30))

	// The 3-day pad pulls the domain into June 2025 and July 2026 before
	// snapping to whole months.
	assert.Equal(t, d(2025, time.June, 1), marks.DomainStart)
	assert.Equal(t, d(2026, time.July, 31), marks.DomainEnd)

	require.NotEmpty(t, marks.Major)
	assert.Equal(t, d(2025, time.June, 1), marks.Major[0])
	assert.Equal(t, "6月", marks.MajorLabels[0])
	assert.Equal(t, "7月", marks.MajorLabels[1])
	assert.Len(t, marks.Major, 14)
}

func TestBuildAxisMarks_DataExtendsDomain(t *testing.T) {
	ranges := []DateRange{
		{Start: dp(2025, time.May, 20), End: dp(2025, time.September, 10)},
		{Start: dp(2025, time.July, 1), End: dp(2026, time.August, 15)},
		{Start: nil, End: nil},
	}

	marks := BuildAxisMarks(ranges, d(2025, time.July, 1), d(2026, time.June, 30))

	assert.Equal(t, d(2025, time.May, 1), marks.DomainStart)
	assert.Equal(t, d(2026, time.August, 31), marks.DomainEnd)
}

func TestBuildAxisMarks_InvertedFallbackCollapses(t *testing.T) {
	marks := BuildAxisMarks(nil, d(2025, time.July, 15), d(2025, time.July, 1))

	assert.Equal(t, d(2025, time.July, 1), marks.DomainStart)
	assert.Equal(t, d(2025, time.July, 31), marks.DomainEnd)
}

func TestBuildAxisMarks_MinorLabels(t *testing.T) {
	marks := BuildAxisMarks(nil, d(2025, time.July, 5), d(2025, time.July, 20))

	labels := make(map[time.Time]string)
	for i, mark := range marks.Minor {
		labels[mark] = marks.MinorLabels[i]
	}

	assert.Equal(t, "6日", labels[d(2025, time.July, 6)])
	assert.Equal(t, "12日", labels[d(2025, time.July, 12)])
	assert.Equal(t, "18日", labels[d(2025, time.July, 18)])
	assert.Equal(t, "24日", labels[d(2025, time.July, 24)])
	assert.Equal(t, "月末", labels[d(2025, time.July, 31)])
}

func TestAxisMarks_TickPositionsSortedUnique(t *testing.T) {
	marks := BuildAxisMarks(nil, d(2025, time.July, 1), d(2025, time.September, 30))

	ticks := marks.TickPositions()
	labels := marks.TickLabels()
	require.Equal(t, len(ticks), len(labels))

	for i := 1; i < len(ticks); i++ {
		assert.True(t, ticks[i-1].Before(ticks[i]))
	}
}

func TestAxisMarks_Contains(t *testing.T) {
	marks := BuildAxisMarks(nil, d(2025, time.July, 1), d(2026, time.June, 30))

	assert.True(t, marks.Contains(d(2025, time.December, 25)))
	assert.True(t, marks.Contains(marks.DomainStart))
	assert.True(t, marks.Contains(marks.DomainEnd))
	assert.False(t, marks.Contains(d(2024, time.December, 25)))
	assert.False(t, marks.Contains(d(2026, time.August, 1)))
}

func TestBuildGanttAxisMarks(t *testing.T) {
	ranges := []DateRange{
		{Start: dp(2025, time.July, 10), End: dp(2025, time.September, 5)},
	}

	marks, err := BuildGanttAxisMarks(ranges)
	require.NoError(t, err)

	// Data-driven domain: no buffer, snapped to the data's months.
	assert.Equal(t, d(2025, time.July, 1), marks.DomainStart)
	assert.Equal(t, d(2025, time.September, 30), marks.DomainEnd)

	require.Len(t, marks.Major, 3)
	assert.Equal(t, "2025/07", marks.MajorLabels[0])
	assert.Equal(t, "2025/09", marks.MajorLabels[2])

	for _, label := range marks.MinorLabels {
		assert.Empty(t, label)
	}
}

func TestBuildGanttAxisMarks_NoValidDates(t *testing.T) {
	_, err := BuildGanttAxisMarks([]DateRange{{Start: nil, End: nil}})
	assert.ErrorIs(t, err, ErrNoValidDates)

	_, err = BuildGanttAxisMarks(nil)
	assert.ErrorIs(t, err, ErrNoValidDates)
}
