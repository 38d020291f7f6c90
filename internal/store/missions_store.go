package store

import (
	"sync"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/pkg/entity"
)

type MissionsStore struct {
	mu    sync.RWMutex
	items []entity.Mission
}

func NewMissionsStore(seed []entity.Mission) *MissionsStore {
	items := make([]entity.Mission, len(seed))
	copy(items, seed)
	return &MissionsStore{
		items: items,
	}
}

func (ms *MissionsStore) List() []entity.Mission {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	out := make([]entity.Mission, len(ms.items))
	copy(out, ms.items)
	return out
}

func (ms *MissionsStore) ListActiveByCategory(cat entity.WasteCategory) []entity.Mission {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	out := make([]entity.Mission, 0)
	for _, m := range ms.items {
		if m.Category == cat && !m.Completed {
			out = append(out, m)
		}
	}
	return out
}

func (ms *MissionsStore) Get(id int64) (entity.Mission, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	for _, m := range ms.items {
		if m.ID == id {
			return m, nil
		}
	}
	return entity.Mission{}, errorvalues.ErrMissionNotFound
}

func (ms *MissionsStore) Update(m entity.Mission) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i := range ms.items {
		if ms.items[i].ID == m.ID {
			ms.items[i] = m
			return nil
		}
	}
	return errorvalues.ErrMissionNotFound
}

func (ms *MissionsStore) CompletedCount() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	count := 0
	for _, m := range ms.items {
		if m.Completed {
			count++
		}
	}
	return count
}
