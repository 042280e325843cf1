package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCSVProjectRepository_RoundTrip(t *testing.T) {
	repo := NewCSVProjectRepository(filepath.Join(t.TempDir(), "projects.csv"))
	ctx := context.Background()

	saved := []domain.Project{
		{
			ID:             "P002",
			Name:           "テスト案件B",
			Client:         "佐藤組",
			Status:         domain.StatusInProgress,
			PlannedStart:   day(2025, time.September, 1),
			PlannedEnd:     day(2025, time.December, 20),
			OrderAmount:    12_000_000,
			PlannedCost:    9_500_000,
			GrossMarginPct: 20.5,
			ProgressPct:    35,
			RiskLevel:      domain.RiskMedium,
			Notes:          "資材, \"特注\" 含む",
		},
		{
			ID:           "P001",
			Name:         "テスト案件A",
			Client:       "金子技建",
			Status:       domain.StatusOrdered,
			PlannedStart: day(2025, time.July, 1),
			PlannedEnd:   day(2025, time.October, 31),
			OrderAmount:  8_000_000,
		},
	}
	require.NoError(t, repo.SaveAll(ctx, saved))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Stored order follows the planned start date, not the input order.
	assert.Equal(t, "P001", loaded[0].ID)
	assert.Equal(t, "P002", loaded[1].ID)
	assert.Equal(t, saved[0], loaded[1])
}

func TestCSVProjectRepository_SortsUndatedRowsLast(t *testing.T) {
	repo := NewCSVProjectRepository(filepath.Join(t.TempDir(), "projects.csv"))
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, []domain.Project{
		{ID: "P010", Name: "日付なし"},
		{ID: "P011", Name: "日付あり", PlannedStart: day(2025, time.August, 1)},
	}))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "P011", loaded[0].ID)
	assert.Equal(t, "P010", loaded[1].ID)
}

func TestCSVProjectRepository_LoadMissingFileReturnsEmpty(t *testing.T) {
	repo := NewCSVProjectRepository(filepath.Join(t.TempDir(), "projects.csv"))

	loaded, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCSVProjectRepository_LoadToleratesPartialColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.csv")
	content := "\ufeff案件名,id,受注金額\n旧形式の案件,P001,\"3,500,000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := NewCSVProjectRepository(path).LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	assert.Equal(t, "P001", loaded[0].ID)
	assert.Equal(t, "旧形式の案件", loaded[0].Name)
	assert.Equal(t, 3_500_000.0, loaded[0].OrderAmount)
	assert.Nil(t, loaded[0].PlannedStart)
	assert.Zero(t, loaded[0].ProgressPct)
}

func TestCSVProjectRepository_EnsureSeedsSampleData(t *testing.T) {
	repo := NewCSVProjectRepository(filepath.Join(t.TempDir(), "projects.csv"))
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 5)
	assert.Equal(t, "P001", loaded[0].ID)

	// A second Ensure must not overwrite edits.
	require.NoError(t, repo.SaveAll(ctx, loaded[:1]))
	require.NoError(t, repo.Ensure(ctx))
	loaded, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}
