package domain

// ValueChainStage is one step of the fixed five-stage project lifecycle
// used for cost and revenue grouping.
type ValueChainStage string

const (
	// StageProcurement 原材料調達 — raw material procurement.
	StageProcurement ValueChainStage = "原材料調達"
	// StagePreparation 施工準備 — construction preparation.
	StagePreparation ValueChainStage = "施工準備"
	// StageConstruction 施工 — construction.
	StageConstruction ValueChainStage = "施工"
	// StageInspection 検査 — inspection.
	StageInspection ValueChainStage = "検査"
	// StageHandover 引き渡し — handover.
	StageHandover ValueChainStage = "引き渡し"
)

// ValueChainStages lists all stages in lifecycle order.
var ValueChainStages = []ValueChainStage{
	StageProcurement,
	StagePreparation,
	StageConstruction,
	StageInspection,
	StageHandover,
}

// String returns the string representation of the stage.
func (s ValueChainStage) String() string {
	return string(s)
}

// IsValid returns true if the stage is a known value.
func (s ValueChainStage) IsValid() bool {
	switch s {
	case StageProcurement, StagePreparation, StageConstruction, StageInspection, StageHandover:
		return true
	default:
		return false
	}
}

// statusStageMap defaults the value-chain stage from the order status
// when a record carries none.
var statusStageMap = map[Status]ValueChainStage{
	StatusQuoting:    StageProcurement,
	StatusOrdered:    StagePreparation,
	StatusInProgress: StageConstruction,
	StatusCompleted:  StageHandover,
}

// StageForStatus maps an order status to its default value-chain stage.
// Unrecognized statuses default to 施工.
func StageForStatus(status Status) ValueChainStage {
	if stage, ok := statusStageMap[status]; ok {
		return stage
	}
	return StageConstruction
}
