// Package domain contains the domain model for the portfolio bounded
// context: project records, derived metrics, monthly aggregation and
// chart geometry.
package domain

// Status is a project's order status. The set is open: the well-known
// values below drive value-chain defaulting, but custom statuses pass
// through untouched.
type Status string

const (
	// StatusQuoting 見積 — estimate in preparation.
	StatusQuoting Status = "見積"
	// StatusOrdered 受注 — order received.
	StatusOrdered Status = "受注"
	// StatusInProgress 施工中 — construction under way.
	StatusInProgress Status = "施工中"
	// StatusCompleted 完了 — handed over.
	StatusCompleted Status = "完了"
	// StatusLost 失注 — order lost.
	StatusLost Status = "失注"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsKnown returns true if the status is one of the well-known values.
func (s Status) IsKnown() bool {
	switch s {
	case StatusQuoting, StatusOrdered, StatusInProgress, StatusCompleted, StatusLost:
		return true
	default:
		return false
	}
}
