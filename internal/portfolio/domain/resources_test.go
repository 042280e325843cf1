package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeResources(t *testing.T) {
	rows := Enrich([]Project{
		{ID: "P001", Manager: "山中", Partner: "九州型枠工業", AvgMonthlyHeadcount: 6},
		{ID: "P002", Manager: "近藤", Partner: "熊本土木サービス", AvgMonthlyHeadcount: 10},
		{ID: "P003", Manager: "山中", Partner: "九州型枠工業", AvgMonthlyHeadcount: 3},
	}, date(2025, time.September, 1))

	managers, partners := SummarizeResources(rows)

	require.Len(t, managers, 2)
	assert.Equal(t, ResourceLoad{Name: "近藤", Headcount: 10}, managers[0])
	assert.Equal(t, ResourceLoad{Name: "山中", Headcount: 9}, managers[1])

	require.Len(t, partners, 2)
	assert.Equal(t, ResourceLoad{Name: "熊本土木サービス", Headcount: 10}, partners[0])
	assert.Equal(t, ResourceLoad{Name: "九州型枠工業", Headcount: 9}, partners[1])
}

func TestSummarizeResources_TiesKeepFirstSeenOrder(t *testing.T) {
	rows := Enrich([]Project{
		{ID: "P001", Manager: "山中", AvgMonthlyHeadcount: 5},
		{ID: "P002", Manager: "近藤", AvgMonthlyHeadcount: 5},
	}, date(2025, time.September, 1))

	managers, _ := SummarizeResources(rows)
	require.Len(t, managers, 2)
	assert.Equal(t, "山中", managers[0].Name)
	assert.Equal(t, "近藤", managers[1].Name)
}

func TestSummarizeResources_Empty(t *testing.T) {
	managers, partners := SummarizeResources(nil)
	assert.Empty(t, managers)
	assert.Empty(t, partners)
}
