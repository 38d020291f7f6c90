package store

import (
	"sync"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/pkg/entity"
)

type RequestsStore struct {
	mu     sync.RWMutex
	items  []entity.Request
	nextID int64
}

func NewRequestsStore(seed []entity.Request) *RequestsStore {
	rs := &RequestsStore{
		items:  make([]entity.Request, 0, len(seed)),
		nextID: 1,
	}
	for _, r := range seed {
		rs.items = append(rs.items, r.Clone())
		if r.ID >= rs.nextID {
			rs.nextID = r.ID + 1
		}
	}
	return rs
}

func (rs *RequestsStore) List() []entity.Request {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	out := make([]entity.Request, 0, len(rs.items))
	for _, r := range rs.items {
		out = append(out, r.Clone())
	}
	return out
}

func (rs *RequestsStore) ListByUser(uid int64) []entity.Request {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	out := make([]entity.Request, 0)
	for _, r := range rs.items {
		if r.UserID == uid {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (rs *RequestsStore) Get(id int64) (entity.Request, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	for _, r := range rs.items {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return entity.Request{}, errorvalues.ErrRequestNotFound
}

// Insert assigns the next session-unique id to r and appends it. IDs are
// monotonically increasing, continuing from the highest seed id.
func (rs *RequestsStore) Insert(r entity.Request) entity.Request {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	r.ID = rs.nextID
	rs.nextID++
	rs.items = append(rs.items, r.Clone())
	return r
}

func (rs *RequestsStore) Update(r entity.Request) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for i := range rs.items {
		if rs.items[i].ID == r.ID {
			rs.items[i] = r.Clone()
			return nil
		}
	}
	return errorvalues.ErrRequestNotFound
}
