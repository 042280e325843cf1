package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name        string
		signals     RiskSignals
		wantLevel   RiskLevel
		wantComment string
	}{
		{
			name:        "no signals",
			signals:     RiskSignals{},
			wantLevel:   RiskLow,
			wantComment: "安定",
		},
		{
			name:        "over budget",
			signals:     RiskSignals{IsOverBudget: true},
			wantLevel:   RiskHigh,
			wantComment: "予算超過",
		},
		{
			name:        "severe progress lag",
			signals:     RiskSignals{ProgressVariance: -35},
			wantLevel:   RiskHigh,
			wantComment: "進捗大幅遅れ",
		},
		{
			name:        "moderate progress lag",
			signals:     RiskSignals{ProgressVariance: -15},
			wantLevel:   RiskMedium,
			wantComment: "進捗遅れ",
		},
		{
			name:        "lag at threshold stays low",
			signals:     RiskSignals{ProgressVariance: -10},
			wantLevel:   RiskLow,
			wantComment: "安定",
		},
		{
			name:        "completion delay",
			signals:     RiskSignals{DelayDays: 14},
			wantLevel:   RiskHigh,
			wantComment: "遅延14日",
		},
		{
			name:        "manual level raises",
			signals:     RiskSignals{ManualLevel: RiskHigh},
			wantLevel:   RiskHigh,
			wantComment: "手動評価:高",
		},
		{
			name:        "manual low never lowers computed level",
			signals:     RiskSignals{IsOverBudget: true, ManualLevel: RiskLow},
			wantLevel:   RiskHigh,
			wantComment: "予算超過",
		},
		{
			name:        "manual annotation kept even below computed level",
			signals:     RiskSignals{IsOverBudget: true, ManualLevel: RiskMedium},
			wantLevel:   RiskHigh,
			wantComment: "予算超過、手動評価:中",
		},
		{
			name:        "note alone means medium",
			signals:     RiskSignals{RiskNote: "地盤調査待ち"},
			wantLevel:   RiskMedium,
			wantComment: "地盤調査待ち",
		},
		{
			name:        "note ignored once a rule fired",
			signals:     RiskSignals{ProgressVariance: -15, RiskNote: "地盤調査待ち"},
			wantLevel:   RiskMedium,
			wantComment: "進捗遅れ",
		},
		{
			name: "reasons join in rule order",
			signals: RiskSignals{
				IsOverBudget:     true,
				ProgressVariance: -40,
				DelayDays:        7,
			},
			wantLevel:   RiskHigh,
			wantComment: "予算超過、進捗大幅遅れ、遅延7日",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, comment := ClassifyRisk(tc.signals)
			assert.Equal(t, tc.wantLevel, level)
			assert.Equal(t, tc.wantComment, comment)
		})
	}
}

func TestExpectedProgress(t *testing.T) {
	start := datePtr(2025, time.July, 1)
	end := datePtr(2025, time.July, 31)

	tests := []struct {
		name  string
		today time.Time
		want  float64
	}{
		{"before start", date(2025, time.June, 15), 0},
		{"at start", date(2025, time.July, 1), 0},
		{"midway", date(2025, time.July, 16), 50},
		{"at end", date(2025, time.July, 31), 100},
		{"after end", date(2025, time.August, 10), 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ExpectedProgress(start, end, tc.today), 0.0001)
		})
	}
}

func TestExpectedProgress_DegenerateSpans(t *testing.T) {
	today := date(2025, time.July, 15)

	assert.Zero(t, ExpectedProgress(nil, datePtr(2025, time.July, 31), today))
	assert.Zero(t, ExpectedProgress(datePtr(2025, time.July, 1), nil, today))
	// Zero-length and inverted spans carry no schedule information.
	assert.Zero(t, ExpectedProgress(datePtr(2025, time.July, 10), datePtr(2025, time.July, 10), today))
	assert.Zero(t, ExpectedProgress(datePtr(2025, time.July, 20), datePtr(2025, time.July, 10), today))
}

func TestDelayDays(t *testing.T) {
	assert.Equal(t, 12, DelayDays(datePtr(2025, time.September, 30), datePtr(2025, time.October, 12)))
	assert.Equal(t, 0, DelayDays(datePtr(2025, time.September, 30), datePtr(2025, time.September, 30)))
	assert.Equal(t, 0, DelayDays(datePtr(2025, time.September, 30), datePtr(2025, time.September, 20)))
	assert.Equal(t, 0, DelayDays(nil, datePtr(2025, time.October, 12)))
	assert.Equal(t, 0, DelayDays(datePtr(2025, time.September, 30), nil))
}

func TestRiskLevelExceeds(t *testing.T) {
	assert.True(t, RiskHigh.Exceeds(RiskMedium))
	assert.True(t, RiskMedium.Exceeds(RiskLow))
	assert.False(t, RiskLow.Exceeds(RiskLow))
	assert.True(t, RiskLow.Exceeds(RiskLevel("")))
}
