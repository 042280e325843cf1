package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbaworks/genba/internal/masters/domain"
)

type memoryMastersRepo struct {
	masters domain.Masters
}

func (r *memoryMastersRepo) Load(ctx context.Context) (domain.Masters, error) {
	return r.masters, nil
}

func (r *memoryMastersRepo) Save(ctx context.Context, masters domain.Masters) error {
	r.masters = masters
	return nil
}

func TestGetMastersHandler_NormalizesOnRead(t *testing.T) {
	repo := &memoryMastersRepo{masters: domain.Masters{
		Clients: []domain.Entry{
			{Name: " 金子技建 ", Active: true},
			{Name: "金子技建", Active: true},
		},
		DecimalPlaces: 9,
	}}
	handler := NewGetMastersHandler(repo)

	masters, err := handler.Handle(context.Background())
	require.NoError(t, err)

	require.Len(t, masters.Clients, 1)
	assert.Equal(t, "金子技建", masters.Clients[0].Name)
	assert.Equal(t, domain.DefaultCurrencyFormat, masters.CurrencyFormat)
	assert.Zero(t, masters.DecimalPlaces)
}

func TestGetActiveChoicesHandler(t *testing.T) {
	masters := domain.DefaultMasters()
	masters.Categories[1].Active = false
	repo := &memoryMastersRepo{masters: masters}
	handler := NewGetActiveChoicesHandler(repo)

	choices, err := handler.Handle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"金子技建", "佐藤組", "新宮開発", "高野組"}, choices.Clients)
	assert.NotContains(t, choices.Categories, "土木")
	assert.Equal(t, []string{"山中", "近藤", "田中"}, choices.Managers)
}
