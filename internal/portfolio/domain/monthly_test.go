package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMonthly_EmptyPortfolioStillCoversFiscalYear(t *testing.T) {
	fy := NewFiscalYear(2025, time.July)

	buckets := AggregateMonthly(nil, fy)

	require.Len(t, buckets, 12)
	assert.Equal(t, date(2025, time.July, 1), buckets[0].MonthStart)
	assert.Equal(t, date(2026, time.June, 1), buckets[11].MonthStart)
	for _, b := range buckets {
		assert.Zero(t, b.Revenue)
		assert.Zero(t, b.GrossProfit)
		assert.Zero(t, b.CashFlow)
		assert.Zero(t, b.CumulativeCashFlow)
	}
}

func TestAggregateMonthly_ProratesByOverlapDays(t *testing.T) {
	fy := NewFiscalYear(2025, time.July)
	// 113 inclusive days at 10,000/day revenue and 5,000/day cost.
	projects := []Project{{
		ID:           "P001",
		PlannedStart: datePtr(2025, time.July, 10),
		PlannedEnd:   datePtr(2025, time.October, 30),
		OrderAmount:  1_130_000,
		PlannedCost:  565_000,
	}}

	buckets := AggregateMonthly(projects, fy)
	require.Len(t, buckets, 12)

	assert.InDelta(t, 220_000, buckets[0].Revenue, 0.01)  // July: 22 days
	assert.InDelta(t, 310_000, buckets[1].Revenue, 0.01)  // August: 31 days
	assert.InDelta(t, 300_000, buckets[2].Revenue, 0.01)  // September: 30 days
	assert.InDelta(t, 300_000, buckets[3].Revenue, 0.01)  // October: 30 days
	assert.Zero(t, buckets[4].Revenue)

	assert.InDelta(t, 110_000, buckets[0].GrossProfit, 0.01)
	assert.InDelta(t, 50.0, buckets[0].GrossMarginPct, 0.0001)

	total := 0.0
	for _, b := range buckets {
		total += b.Revenue
	}
	assert.InDelta(t, 1_130_000, total, 0.01)
}

func TestAggregateMonthly_CashSpansWithPlannedFallback(t *testing.T) {
	fy := NewFiscalYear(2025, time.July)
	projects := []Project{{
		ID:              "P002",
		PlannedStart:    datePtr(2025, time.July, 1),
		PlannedEnd:      datePtr(2025, time.August, 31),
		OrderAmount:     620_000,
		PlannedCost:     310_000,
		CollectionStart: datePtr(2025, time.November, 1),
		CollectionEnd:   datePtr(2025, time.November, 30),
		// Payment span unset: cash out follows the planned span.
	}}

	buckets := AggregateMonthly(projects, fy)

	assert.Zero(t, buckets[0].CashIn)
	assert.InDelta(t, 620_000, buckets[4].CashIn, 0.01) // November

	assert.InDelta(t, 155_000, buckets[0].CashOut, 0.01) // July
	assert.InDelta(t, 155_000, buckets[1].CashOut, 0.01) // August
	assert.Zero(t, buckets[4].CashOut)

	assert.InDelta(t, -155_000, buckets[0].CashFlow, 0.01)
	assert.InDelta(t, -155_000, buckets[0].CumulativeCashFlow, 0.01)
	assert.InDelta(t, -310_000, buckets[1].CumulativeCashFlow, 0.01)
	assert.InDelta(t, 310_000, buckets[4].CumulativeCashFlow, 0.01)
	assert.InDelta(t, 310_000, buckets[11].CumulativeCashFlow, 0.01)
}

func TestAggregateMonthly_SpanOutsideFiscalYearContributesNothing(t *testing.T) {
	fy := NewFiscalYear(2025, time.July)
	projects := []Project{{
		ID:           "P003",
		PlannedStart: datePtr(2024, time.January, 1),
		PlannedEnd:   datePtr(2024, time.December, 31),
		OrderAmount:  9_000_000,
	}}

	for _, b := range AggregateMonthly(projects, fy) {
		assert.Zero(t, b.Revenue)
	}
}
