package store

import (
	"sync"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/pkg/entity"
)

// NotificationsStore keeps the session's notification feed, newest first.
// The prototype treats the feed as global rather than per-user.
type NotificationsStore struct {
	mu     sync.RWMutex
	items  []entity.Notification
	nextID int64
}

func NewNotificationsStore(seed []entity.Notification) *NotificationsStore {
	ns := &NotificationsStore{
		items:  make([]entity.Notification, len(seed)),
		nextID: 1,
	}
	copy(ns.items, seed)
	for _, n := range seed {
		if n.ID >= ns.nextID {
			ns.nextID = n.ID + 1
		}
	}
	return ns
}

func (ns *NotificationsStore) List() []entity.Notification {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	out := make([]entity.Notification, len(ns.items))
	copy(out, ns.items)
	return out
}

func (ns *NotificationsStore) Insert(n entity.Notification) entity.Notification {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	n.ID = ns.nextID
	ns.nextID++
	ns.items = append([]entity.Notification{n}, ns.items...)
	return n
}

// MarkRead flips the read flag of one notification. The flag never goes back
// to unread.
func (ns *NotificationsStore) MarkRead(id int64) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	for i := range ns.items {
		if ns.items[i].ID == id {
			ns.items[i].Read = true
			return nil
		}
	}
	return errorvalues.ErrNotificationNotFound
}

func (ns *NotificationsStore) MarkAllRead() {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	for i := range ns.items {
		ns.items[i].Read = true
	}
}

func (ns *NotificationsStore) UnreadCount() int {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	count := 0
	for _, n := range ns.items {
		if !n.Read {
			count++
		}
	}
	return count
}
