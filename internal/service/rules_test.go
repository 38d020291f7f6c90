package service_test

import (
	"fmt"
	"testing"

	"github.com/eresik/eresik/internal/service"
	"github.com/eresik/eresik/internal/store"
	"github.com/eresik/eresik/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func newRules() *service.RewardRules {
	return service.NewRewardRules(
		service.DefaultCO2PerKgWaste,
		service.DefaultTreesPerKgWaste,
		store.DefaultSeed().Categories,
	)
}

func TestPointsFor(t *testing.T) {
	rules := newRules()
	cases := []struct {
		category entity.WasteCategory
		weightKg float64
		want     int
	}{
		{entity.CategoryPlastic, 1, 10},
		{entity.CategoryPaper, 2, 16},
		{entity.CategoryOrganic, 3, 15},
		{entity.CategoryMetal, 4, 60},
		{entity.CategoryGlass, 0.5, 6},
		// unknown categories fall back to the default rate
		{"styrofoam", 2, 10},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s_%vkg", c.category, c.weightKg), func(t *testing.T) {
			assert.Equal(t, c.want, rules.PointsFor(c.category, c.weightKg))
		})
	}
}

func TestLevelFor(t *testing.T) {
	rules := newRules()
	assert.Equal(t, 1, rules.LevelFor(0))
	assert.Equal(t, 1, rules.LevelFor(99))
	assert.Equal(t, 2, rules.LevelFor(100))
	assert.Equal(t, 2, rules.LevelFor(120))
	assert.Equal(t, 3, rules.LevelFor(200))
}

func TestEnvironmentalSavings(t *testing.T) {
	rules := newRules()
	assert.InDelta(t, 25.0, rules.CO2SavedKg(50), 1e-9)
	assert.InDelta(t, 1.0, rules.TreesEquivalent(50), 1e-9)

	custom := service.NewRewardRules(0.7, 0.05, store.DefaultSeed().Categories)
	assert.InDelta(t, 35.0, custom.CO2SavedKg(50), 1e-9)
	assert.InDelta(t, 2.5, custom.TreesEquivalent(50), 1e-9)
}
