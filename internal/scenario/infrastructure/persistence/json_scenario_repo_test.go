package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbaworks/genba/internal/scenario/domain"
)

func newTestRepo(t *testing.T) *JSONScenarioRepository {
	t.Helper()
	return NewJSONScenarioRepository(filepath.Join(t.TempDir(), "scenarios.json"))
}

func TestJSONScenarioRepository_MissingFileYieldsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	scenarios, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, scenarios)
}

func TestJSONScenarioRepository_RoundTripPreservesOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, domain.DefaultScenarios()))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "現行計画", loaded[0].Name)
	assert.Equal(t, "短縮案", loaded[1].Name)
	assert.Equal(t, "延長案", loaded[2].Name)

	assert.Equal(t, domain.DefaultScenarios(), loaded)
}

func TestJSONScenarioRepository_EnsureSeedsOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx))

	scenarios, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	// A second Ensure must not clobber edits.
	require.NoError(t, scenarios[0].UpdateTask("基礎工事", domain.TaskUpdate{ProgressPct: 80, CostActual: 9_000_000}))
	require.NoError(t, repo.SaveAll(ctx, scenarios))
	require.NoError(t, repo.Ensure(ctx))

	reloaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 80, reloaded[0].Tasks[0].ProgressPct, 0.0001)
}

func TestJSONScenarioRepository_BlankRiskDefaultsLow(t *testing.T) {
	repo := newTestRepo(t)
	raw := `{"試算": [{"Task": "仮設工事", "Start": "2025-10-01", "Finish": "", "Progress": 5}]}`
	require.NoError(t, os.WriteFile(repo.path, []byte(raw), 0o644))

	scenarios, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	require.Len(t, scenarios[0].Tasks, 1)

	task := scenarios[0].Tasks[0]
	assert.Equal(t, "低", task.RiskLevel)
	require.NotNil(t, task.Start)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), *task.Start)
	assert.Nil(t, task.Finish)
}

func TestJSONScenarioRepository_MalformedFile(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, os.WriteFile(repo.path, []byte("[]"), 0o644))

	_, err := repo.LoadAll(context.Background())
	assert.Error(t, err)
}
