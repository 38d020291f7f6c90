package store

import (
	"sync"

	"github.com/eresik/eresik/pkg/entity"
)

// UsersStore holds the single community-member profile of the session.
type UsersStore struct {
	mu   sync.RWMutex
	user entity.User
}

func NewUsersStore(seed entity.User) *UsersStore {
	return &UsersStore{
		user: seed.Clone(),
	}
}

func (us *UsersStore) Profile() entity.User {
	us.mu.RLock()
	defer us.mu.RUnlock()
	return us.user.Clone()
}

func (us *UsersStore) Save(u entity.User) {
	us.mu.Lock()
	defer us.mu.Unlock()
	us.user = u.Clone()
}
