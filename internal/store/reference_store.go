package store

import (
	"github.com/eresik/eresik/pkg/entity"
)

// ReferenceStore serves the read-only seed collections: leaderboard, KPI
// aggregates, registered users and waste category metadata. Nothing mutates
// these within a session, so no lock is needed.
type ReferenceStore struct {
	leaderboard []entity.LeaderboardEntry
	kpi         entity.KPIData
	registered  []entity.RegisteredUser
	categories  []entity.CategoryInfo
}

func NewReferenceStore(seed *Seed) *ReferenceStore {
	rs := &ReferenceStore{
		leaderboard: make([]entity.LeaderboardEntry, len(seed.Leaderboard)),
		kpi:         seed.KPI.Clone(),
		registered:  make([]entity.RegisteredUser, len(seed.RegisteredUsers)),
		categories:  make([]entity.CategoryInfo, len(seed.Categories)),
	}
	copy(rs.leaderboard, seed.Leaderboard)
	copy(rs.registered, seed.RegisteredUsers)
	copy(rs.categories, seed.Categories)
	return rs
}

func (rs *ReferenceStore) Leaderboard() []entity.LeaderboardEntry {
	out := make([]entity.LeaderboardEntry, len(rs.leaderboard))
	copy(out, rs.leaderboard)
	return out
}

func (rs *ReferenceStore) KPI() entity.KPIData {
	return rs.kpi.Clone()
}

func (rs *ReferenceStore) RegisteredUsers() []entity.RegisteredUser {
	out := make([]entity.RegisteredUser, len(rs.registered))
	copy(out, rs.registered)
	return out
}

func (rs *ReferenceStore) Categories() []entity.CategoryInfo {
	out := make([]entity.CategoryInfo, len(rs.categories))
	copy(out, rs.categories)
	return out
}
