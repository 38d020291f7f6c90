package service

import (
	"math"

	"github.com/eresik/eresik/pkg/entity"
)

// Default environmental multipliers. These are program estimates, not cited
// science, which is why they stay overridable through config.
const (
	DefaultCO2PerKgWaste   = 0.5
	DefaultTreesPerKgWaste = 0.02

	// Reward rate applied to categories missing from the metadata table.
	DefaultPointsPerKg = 5
)

// RewardRules is the pure calculation set behind the rewards program:
// points per verified kilogram, member level, and the derived environmental
// savings shown on the dashboard.
type RewardRules struct {
	co2PerKg   float64
	treesPerKg float64
	rates      map[entity.WasteCategory]int
}

func NewRewardRules(co2PerKg, treesPerKg float64, categories []entity.CategoryInfo) *RewardRules {
	rates := make(map[entity.WasteCategory]int, len(categories))
	for _, c := range categories {
		rates[c.ID] = c.PointsPerKg
	}
	return &RewardRules{
		co2PerKg:   co2PerKg,
		treesPerKg: treesPerKg,
		rates:      rates,
	}
}

func (rr *RewardRules) PointsFor(cat entity.WasteCategory, weightKg float64) int {
	rate, ok := rr.rates[cat]
	if !ok {
		rate = DefaultPointsPerKg
	}
	return int(math.Round(weightKg * float64(rate)))
}

// LevelFor maps a point total to a member level, one level per 100 points.
func (rr *RewardRules) LevelFor(points int) int {
	return points/100 + 1
}

func (rr *RewardRules) CO2SavedKg(totalKg float64) float64 {
	return totalKg * rr.co2PerKg
}

func (rr *RewardRules) TreesEquivalent(totalKg float64) float64 {
	return totalKg * rr.treesPerKg
}
