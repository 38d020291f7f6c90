package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/internal/store"
	"github.com/eresik/eresik/pkg/entity"
)

type MissionsService struct {
	repo     store.MissionsStoreI
	rewards  RewardsServiceI
	notifier NotificationsServiceI
}

func NewMissionsService(missionsStore store.MissionsStoreI, rewards RewardsServiceI, notifier NotificationsServiceI) *MissionsService {
	if missionsStore == nil || rewards == nil || notifier == nil {
		log.Fatal("on missions service provided nil dependencies")
	}
	return &MissionsService{
		repo:     missionsStore,
		rewards:  rewards,
		notifier: notifier,
	}
}

func (ms *MissionsService) List(ctx context.Context) ([]entity.Mission, error) {
	return ms.repo.List(), nil
}

// Complete marks a mission done, pins its progress to the target and awards
// the mission points. An already completed mission is left untouched.
func (ms *MissionsService) Complete(ctx context.Context, id int64) (entity.Mission, error) {
	m, err := ms.repo.Get(id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMissionNotFound) {
			return entity.Mission{}, err
		}
		return entity.Mission{}, errors.New("missions store error: " + err.Error())
	}
	if m.Completed {
		return m, nil
	}
	m.Completed = true
	m.Current = m.Target
	if err := ms.repo.Update(m); err != nil {
		return entity.Mission{}, errors.New("missions store error: " + err.Error())
	}
	ms.rewards.AddPoints(ctx, m.Points)
	ms.notifier.Push(ctx, "Misi Selesai!",
		fmt.Sprintf("Anda menyelesaikan %q & dapat %d poin!", m.Title, m.Points),
		entity.NotificationAchievement)
	ms.rewards.EvaluateBadges(ctx, ms.repo.CompletedCount())
	return m, nil
}

// SetProgress stores a new progress value, clamped so it never exceeds the
// target. It does not flip the completed flag itself.
func (ms *MissionsService) SetProgress(ctx context.Context, id int64, value float64) (entity.Mission, error) {
	m, err := ms.repo.Get(id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMissionNotFound) {
			return entity.Mission{}, err
		}
		return entity.Mission{}, errors.New("missions store error: " + err.Error())
	}
	if m.Completed {
		return m, nil
	}
	if value > m.Target {
		value = m.Target
	}
	if value < 0 {
		value = 0
	}
	m.Current = value
	if err := ms.repo.Update(m); err != nil {
		return entity.Mission{}, errors.New("missions store error: " + err.Error())
	}
	return m, nil
}

// AddCategoryProgress distributes a verified deposit's weight to every active
// mission of the same category, completing those that reach their target.
func (ms *MissionsService) AddCategoryProgress(ctx context.Context, cat entity.WasteCategory, weightKg float64) error {
	for _, m := range ms.repo.ListActiveByCategory(cat) {
		updated, err := ms.SetProgress(ctx, m.ID, m.Current+weightKg)
		if err != nil {
			return err
		}
		if updated.Current >= updated.Target {
			if _, err := ms.Complete(ctx, m.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ms *MissionsService) CompletedCount(ctx context.Context) int {
	return ms.repo.CompletedCount()
}
