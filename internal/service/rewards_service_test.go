package service_test

import (
	"context"
	"testing"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The level keeps step with floor(points/100)+1 and never decreases.
func TestLevelMonotonic(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	prev := f.users.Profile().Level
	for _, award := range []int{10, 50, 40, 5, 100, 1} {
		u := f.rewardsService.AddPoints(ctx, award)
		assert.GreaterOrEqual(t, u.Level, prev)
		assert.GreaterOrEqual(t, u.Level, u.Points/100+1)
		prev = u.Level
	}
	u := f.users.Profile()
	assert.Equal(t, 326, u.Points)
	assert.Equal(t, 4, u.Level)
}

func TestAddWasteDerivedStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	u := f.rewardsService.AddWaste(ctx, entity.CategoryMetal, 4)

	assert.InDelta(t, 6.8, u.Stats.MetalKg, 1e-9)
	assert.InDelta(t, 49.5, u.Stats.TotalKg, 1e-9)
	assert.InDelta(t, 24.75, u.Stats.CO2SavedKg, 1e-9)
	assert.InDelta(t, 0.99, u.Stats.TreesEquivalent, 1e-9)

	// categories outside the fixed set land in the other bucket
	u = f.rewardsService.AddWaste(ctx, "styrofoam", 0.5)
	assert.InDelta(t, 2.2, u.Stats.OtherKg, 1e-9)
	assert.InDelta(t, 50.0, u.Stats.TotalKg, 1e-9)
}

func TestAwardBadge(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	t.Run("stamps the date once", func(t *testing.T) {
		u, err := f.rewardsService.AwardBadge(ctx, 3)
		require.NoError(t, err)

		var badge entity.Badge
		for _, b := range u.Badges {
			if b.ID == 3 {
				badge = b
			}
		}
		require.True(t, badge.Achieved)
		require.NotNil(t, badge.AchievedAt)
		stamped := *badge.AchievedAt

		// awarding again neither clears the flag nor moves the date
		u, err = f.rewardsService.AwardBadge(ctx, 3)
		require.NoError(t, err)
		for _, b := range u.Badges {
			if b.ID == 3 {
				assert.True(t, b.Achieved)
				assert.Equal(t, stamped, *b.AchievedAt)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := f.rewardsService.AwardBadge(ctx, 9999)
		assert.ErrorIs(t, err, errorvalues.ErrBadgeNotFound)
	})
}

func TestEvaluateBadges(t *testing.T) {
	ctx := context.Background()

	t.Run("mission threshold", func(t *testing.T) {
		f := newFixture()
		feedBefore := len(f.notifications.List())

		f.rewardsService.EvaluateBadges(ctx, 20)

		var warrior entity.Badge
		for _, b := range f.users.Profile().Badges {
			if b.ID == 4 {
				warrior = b
			}
		}
		assert.True(t, warrior.Achieved)
		assert.Len(t, f.notifications.List(), feedBefore+1)

		// thresholds that stay crossed must not re-award
		f.rewardsService.EvaluateBadges(ctx, 21)
		assert.Len(t, f.notifications.List(), feedBefore+1)
	})

	t.Run("below thresholds nothing happens", func(t *testing.T) {
		f := newFixture()
		before := f.users.Profile()
		f.rewardsService.EvaluateBadges(ctx, 2)
		assert.Equal(t, before, f.users.Profile())
	})
}
