package store_test

import (
	"testing"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/internal/store"
	"github.com/eresik/eresik/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestMissionsStoreListActiveByCategory(t *testing.T) {
	ms := store.NewMissionsStore(store.DefaultSeed().Missions)

	// the seed's plastik mission is already completed
	assert.Empty(t, ms.ListActiveByCategory(entity.CategoryPlastic))

	active := ms.ListActiveByCategory(entity.CategoryGlass)
	assert.Len(t, active, 1)
	assert.Equal(t, int64(2), active[0].ID)
}

func TestMissionsStoreUpdate(t *testing.T) {
	ms := store.NewMissionsStore(store.DefaultSeed().Missions)

	m, err := ms.Get(2)
	assert.NoError(t, err)
	m.Current = 8
	assert.NoError(t, ms.Update(m))

	stored, err := ms.Get(2)
	assert.NoError(t, err)
	assert.Equal(t, float64(8), stored.Current)

	m.ID = 9999
	assert.ErrorIs(t, ms.Update(m), errorvalues.ErrMissionNotFound)
}

func TestMissionsStoreCompletedCount(t *testing.T) {
	ms := store.NewMissionsStore(store.DefaultSeed().Missions)
	assert.Equal(t, 1, ms.CompletedCount())

	m, err := ms.Get(2)
	assert.NoError(t, err)
	m.Completed = true
	assert.NoError(t, ms.Update(m))
	assert.Equal(t, 2, ms.CompletedCount())
}
