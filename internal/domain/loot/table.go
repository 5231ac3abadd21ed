package loot

import (
	"math"
	"math/rand"
)

type Table struct {
	ID              string  `json:"id"`
	GoldMin         int     `json:"gold_min"`
	GoldMax         int     `json:"gold_max"`
	XPMin           int     `json:"xp_min"`
	XPMax           int     `json:"xp_max"`
	GuaranteedDrops int     `json:"guaranteed_drops"`
	BonusChance     float64 `json:"bonus_chance"`
}

var (
	TableStandard   = Table{ID: "standard", GoldMin: 8, GoldMax: 20, XPMin: 10, XPMax: 18, GuaranteedDrops: 1, BonusChance: 0.15}
	TableBoss       = Table{ID: "boss", GoldMin: 40, GoldMax: 80, XPMin: 50, XPMax: 90, GuaranteedDrops: 2, BonusChance: 0.35}
	TableCompletion = Table{ID: "completion", GoldMin: 500, GoldMax: 500, XPMin: 1000, XPMax: 1000, GuaranteedDrops: 3, BonusChance: 0.5}
)

type Drop struct {
	Gold      int        `json:"gold"`
	XP        int        `json:"xp"`
	Items     []Item     `json:"items,omitempty"`
	Materials []Material `json:"materials,omitempty"`
}

// rewardMultiplier compounds the difficulty multiplier with per-depth
// growth so deep floors pay better even at the same difficulty.
func rewardMultiplier(ctx Context) float64 {
	depth := ctx.Depth
	if depth < 1 {
		depth = 1
	}
	return ctx.difficultyMultiplier() * math.Pow(DepthRewardGrowth, float64(depth-1))
}

func rollRange(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

func bonusItemChance(ctx Context) float64 {
	chance := BaseBonusItemChance + BonusItemChancePerDepth*float64(ctx.Depth)
	if chance > MaxBonusItemChance {
		chance = MaxBonusItemChance
	}
	return chance
}

// GenerateFromTable resolves one kill or chest against a drop table.
// Guaranteed drops roll the unique check first and fall back to a
// regular item; the two bonus rolls and materials follow in a fixed
// order so a seeded stream replays the same drop.
func GenerateFromTable(r *rand.Rand, table Table, ctx Context) Drop {
	mult := rewardMultiplier(ctx)
	drop := Drop{
		Gold: scaleReward(rollRange(r, table.GoldMin, table.GoldMax), mult),
		XP:   scaleReward(rollRange(r, table.XPMin, table.XPMax), mult),
	}

	for i := 0; i < table.GuaranteedDrops; i++ {
		if it, ok := TryUnique(r, ctx); ok {
			drop.Items = append(drop.Items, it)
			continue
		}
		drop.Items = append(drop.Items, GenerateItem(r, ctx))
	}

	if r.Float64() < bonusItemChance(ctx) {
		drop.Items = append(drop.Items, GenerateItem(r, ctx))
	}
	if r.Float64() < table.BonusChance {
		drop.Items = append(drop.Items, GenerateItem(r, ctx))
	}

	drop.Materials = RollMaterials(r, ctx)
	return drop
}

func scaleReward(base int, mult float64) int {
	return int(math.Round(float64(base) * mult))
}
