package domain

import (
	"time"

	sharedDomain "github.com/genbaworks/genba/internal/shared/domain"
)

// MonthlyBucket aggregates the portfolio for one calendar month of a
// fiscal year. Amounts are prorated by date overlap, so a project
// spanning three and a half months contributes proportionally to four
// buckets.
type MonthlyBucket struct {
	MonthStart time.Time

	Revenue        float64 // 受注金額
	PlannedCost    float64 // 予定原価
	GrossProfit    float64 // 粗利
	GrossMarginPct float64 // 粗利率
	ManpowerDays   float64 // 延べ人数

	CashIn             float64 // キャッシュイン
	CashOut            float64 // キャッシュアウト
	CashFlow           float64 // キャッシュフロー
	CumulativeCashFlow float64 // 累計キャッシュフロー
}

// AggregateMonthly buckets the projects into the 12 calendar months of
// the fiscal year. Revenue, planned cost and manpower are prorated over
// the planned span; cash in over the collection span (falling back to
// the planned span per endpoint) and cash out over the payment span
// likewise. An empty project list still yields the full zero-filled
// 12-month sequence.
func AggregateMonthly(projects []Project, fy FiscalYear) []MonthlyBucket {
	months := fy.Months()
	buckets := make([]MonthlyBucket, 0, len(months))

	cumulative := 0.0
	for _, monthStart := range months {
		monthEnd := sharedDomain.MonthEnd(monthStart)
		bucket := MonthlyBucket{MonthStart: monthStart}

		for i := range projects {
			p := &projects[i]
			bucket.Revenue += sharedDomain.Allocate(p.OrderAmount, p.PlannedStart, p.PlannedEnd, monthStart, monthEnd)
			bucket.PlannedCost += sharedDomain.Allocate(p.PlannedCost, p.PlannedStart, p.PlannedEnd, monthStart, monthEnd)
			bucket.ManpowerDays += sharedDomain.Allocate(p.AvgMonthlyHeadcount, p.PlannedStart, p.PlannedEnd, monthStart, monthEnd)
			bucket.CashIn += sharedDomain.Allocate(p.OrderAmount,
				fallback(p.CollectionStart, p.PlannedStart), fallback(p.CollectionEnd, p.PlannedEnd),
				monthStart, monthEnd)
			bucket.CashOut += sharedDomain.Allocate(p.PlannedCost,
				fallback(p.PaymentStart, p.PlannedStart), fallback(p.PaymentEnd, p.PlannedEnd),
				monthStart, monthEnd)
		}

		bucket.GrossProfit = bucket.Revenue - bucket.PlannedCost
		if bucket.Revenue != 0 {
			bucket.GrossMarginPct = bucket.GrossProfit / bucket.Revenue * 100
		}
		bucket.CashFlow = bucket.CashIn - bucket.CashOut
		cumulative += bucket.CashFlow
		bucket.CumulativeCashFlow = cumulative

		buckets = append(buckets, bucket)
	}

	return buckets
}

func fallback(primary, secondary *time.Time) *time.Time {
	if primary != nil {
		return primary
	}
	return secondary
}
