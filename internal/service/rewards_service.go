package service

import (
	"context"
	"fmt"
	"log"
	"time"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/internal/store"
	"github.com/eresik/eresik/pkg/entity"
)

// Badge thresholds watched by EvaluateBadges. The prototype's badge set is
// finite, so these are fixed ids instead of a rule engine.
const (
	recyclingHeroBadgeID    = 3
	recyclingHeroKgRequired = 50

	ecoWarriorBadgeID          = 4
	ecoWarriorMissionsRequired = 20
)

// RewardsService owns the community member's points, level, badges and
// accumulated waste statistics.
type RewardsService struct {
	users    store.UsersStoreI
	notifier NotificationsServiceI
	rules    *RewardRules
}

func NewRewardsService(usersStore store.UsersStoreI, notifier NotificationsServiceI, rules *RewardRules) *RewardsService {
	if usersStore == nil || notifier == nil || rules == nil {
		log.Fatal("on rewards service provided nil dependencies")
	}
	return &RewardsService{
		users:    usersStore,
		notifier: notifier,
		rules:    rules,
	}
}

func (rs *RewardsService) Profile(ctx context.Context) entity.User {
	return rs.users.Profile()
}

// AddPoints raises the member's point total and recomputes the level. The
// level keeps its previous value when the recomputed one is lower.
func (rs *RewardsService) AddPoints(ctx context.Context, points int) entity.User {
	u := rs.users.Profile()
	u.Points += points
	if lvl := rs.rules.LevelFor(u.Points); lvl > u.Level {
		u.Level = lvl
	}
	rs.users.Save(u)
	return u
}

func (rs *RewardsService) AddWaste(ctx context.Context, cat entity.WasteCategory, weightKg float64) entity.User {
	u := rs.users.Profile()
	switch cat {
	case entity.CategoryPlastic:
		u.Stats.PlasticKg += weightKg
	case entity.CategoryPaper:
		u.Stats.PaperKg += weightKg
	case entity.CategoryOrganic:
		u.Stats.OrganicKg += weightKg
	case entity.CategoryMetal:
		u.Stats.MetalKg += weightKg
	default:
		u.Stats.OtherKg += weightKg
	}
	u.Stats.TotalKg += weightKg
	u.Stats.CO2SavedKg = rs.rules.CO2SavedKg(u.Stats.TotalKg)
	u.Stats.TreesEquivalent = rs.rules.TreesEquivalent(u.Stats.TotalKg)
	rs.users.Save(u)
	return u
}

// AwardBadge flips one badge to achieved and stamps its date. Calling it for
// an already achieved badge changes nothing, the date included.
func (rs *RewardsService) AwardBadge(ctx context.Context, badgeID int64) (entity.User, error) {
	u := rs.users.Profile()
	for i := range u.Badges {
		if u.Badges[i].ID != badgeID {
			continue
		}
		if u.Badges[i].Achieved {
			return u, nil
		}
		now := time.Now().UTC()
		u.Badges[i].Achieved = true
		u.Badges[i].AchievedAt = &now
		rs.users.Save(u)
		return u, nil
	}
	return entity.User{}, errorvalues.ErrBadgeNotFound
}

// EvaluateBadges re-checks the fixed badge thresholds. completedMissions is
// passed in by the caller that moved the mission state.
func (rs *RewardsService) EvaluateBadges(ctx context.Context, completedMissions int) {
	u := rs.users.Profile()
	if u.Stats.TotalKg >= recyclingHeroKgRequired {
		rs.awardOnce(ctx, u, recyclingHeroBadgeID)
	}
	if completedMissions >= ecoWarriorMissionsRequired {
		rs.awardOnce(ctx, u, ecoWarriorBadgeID)
	}
}

func (rs *RewardsService) awardOnce(ctx context.Context, snapshot entity.User, badgeID int64) {
	for _, b := range snapshot.Badges {
		if b.ID == badgeID && !b.Achieved {
			if _, err := rs.AwardBadge(ctx, badgeID); err != nil {
				return
			}
			rs.notifier.Push(ctx, "Lencana Baru!",
				fmt.Sprintf("Selamat! Anda mendapatkan lencana %q.", b.Name),
				entity.NotificationAchievement)
			return
		}
	}
}
