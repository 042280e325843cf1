package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageForStatus(t *testing.T) {
	tests := []struct {
		status Status
		want   ValueChainStage
	}{
		{StatusQuoting, StageProcurement},
		{StatusOrdered, StagePreparation},
		{StatusInProgress, StageConstruction},
		{StatusCompleted, StageHandover},
		{StatusLost, StageConstruction},
		{Status("保留"), StageConstruction},
	}

	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, StageForStatus(tc.status))
		})
	}
}

func TestValueChainStagesOrder(t *testing.T) {
	assert.Equal(t, []ValueChainStage{
		StageProcurement,
		StagePreparation,
		StageConstruction,
		StageInspection,
		StageHandover,
	}, ValueChainStages)
}

func TestStatusIsKnown(t *testing.T) {
	assert.True(t, StatusInProgress.IsKnown())
	assert.True(t, StatusLost.IsKnown())
	assert.False(t, Status("保留").IsKnown())
	assert.False(t, Status("").IsKnown())
}

func TestValueChainStageIsValid(t *testing.T) {
	assert.True(t, StageInspection.IsValid())
	assert.False(t, ValueChainStage("物流").IsValid())
	assert.False(t, ValueChainStage("").IsValid())
}
