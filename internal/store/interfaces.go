package store

import (
	"github.com/eresik/eresik/pkg/entity"
)

type UsersStoreI interface {
	// Returns a copy of the session's community-member profile
	Profile() entity.User
	// Replaces the stored profile with u
	Save(u entity.User)
}

type RequestsStoreI interface {
	// Lists every request in insertion order
	List() []entity.Request
	// Lists requests owned by user with uid, insertion order preserved
	ListByUser(uid int64) []entity.Request
	// Searches request with given id
	Get(id int64) (entity.Request, error)
	// Assigns the next session-unique id to r and appends it
	Insert(r entity.Request) entity.Request
	// Replaces the stored request matching r.ID
	Update(r entity.Request) error
}

type MissionsStoreI interface {
	// Lists every mission
	List() []entity.Mission
	// Lists missions of category cat that are not completed yet
	ListActiveByCategory(cat entity.WasteCategory) []entity.Mission
	// Searches mission with given id
	Get(id int64) (entity.Mission, error)
	// Replaces the stored mission matching m.ID
	Update(m entity.Mission) error
	// Counts completed missions
	CompletedCount() int
}

type NotificationsStoreI interface {
	// Lists notifications, newest first
	List() []entity.Notification
	// Assigns the next id to n and prepends it
	Insert(n entity.Notification) entity.Notification
	// Flips the read flag of notification id, once
	MarkRead(id int64) error
	// Flips the read flag of every notification
	MarkAllRead()
	// Counts unread notifications
	UnreadCount() int
}

type InventoryStoreI interface {
	// Lists the waste stock per category
	Stock() []entity.WasteStock
	// Searches the stock row of category cat
	StockByCategory(cat entity.WasteCategory) (entity.WasteStock, error)
	// Replaces the stored stock row matching s.ID
	UpdateStock(s entity.WasteStock) error
	// Lists recorded sales transactions
	Sales() []entity.SalesTransaction
	// Assigns the next id to t and appends it
	InsertSale(t entity.SalesTransaction) entity.SalesTransaction
}

type ReferenceStoreI interface {
	// Community leaderboard, seed pass-through
	Leaderboard() []entity.LeaderboardEntry
	// Facility-manager KPI aggregates, seed pass-through
	KPI() entity.KPIData
	// Registered community members, seed pass-through
	RegisteredUsers() []entity.RegisteredUser
	// Waste category metadata including reward rates
	Categories() []entity.CategoryInfo
}
