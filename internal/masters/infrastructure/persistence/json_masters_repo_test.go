package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbaworks/genba/internal/masters/domain"
)

func newTestRepo(t *testing.T) *JSONMastersRepository {
	t.Helper()
	return NewJSONMastersRepository(filepath.Join(t.TempDir(), "masters.json"))
}

func TestJSONMastersRepository_MissingFileYieldsNormalizedEmpty(t *testing.T) {
	repo := newTestRepo(t)

	masters, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, masters.Clients)
	assert.Equal(t, domain.DefaultCurrencyFormat, masters.CurrencyFormat)
	assert.NotNil(t, masters.Holidays)
}

func TestJSONMastersRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved := domain.DefaultMasters()
	saved.Holidays = []string{"2025-12-29", "2025-12-30"}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestJSONMastersRepository_LoadRepairsStructure(t *testing.T) {
	repo := newTestRepo(t)
	raw := `{"clients": [{"name": " 金子技建 ", "active": true}, {"name": "金子技建", "active": false}]}`
	require.NoError(t, os.WriteFile(repo.path, []byte(raw), 0o644))

	masters, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Entry{{Name: "金子技建", Active: true}}, masters.Clients)
	assert.Empty(t, masters.Categories)
	assert.Equal(t, domain.DefaultCurrencyFormat, masters.CurrencyFormat)
	assert.NotNil(t, masters.History)
}

func TestJSONMastersRepository_EnsureSeedsOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx))

	masters, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, masters.Clients, 4)

	masters.Clients, err = domain.AddEntry(masters.Clients, "西部開発", true)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, masters))
	require.NoError(t, repo.Ensure(ctx))

	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, reloaded.Clients, 5)
}
