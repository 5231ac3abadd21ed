package loot

import (
	"math/rand"

	"gloomhold/internal/rng"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"

	// RarityUnique sits outside the ladder: unique drops are rolled by
	// their own chance check, never by RollRarity.
	RarityUnique Rarity = "unique"
)

type rarityStep struct {
	Rarity Rarity
	Weight float64
}

// The fixed six-tier ladder. Magic find and zone boosts scale every
// non-lowest weight, shifting mass upward without ever removing the floor.
var rarityLadder = []rarityStep{
	{RarityCommon, 100},
	{RarityUncommon, 45},
	{RarityRare, 18},
	{RarityEpic, 6},
	{RarityLegendary, 1.8},
	{RarityMythic, 0.2},
}

func (r Rarity) Index() int {
	if r == RarityUnique {
		return len(rarityLadder)
	}
	for i, step := range rarityLadder {
		if step.Rarity == r {
			return i
		}
	}
	return 0
}

// AffixCap is the number of affix slots the rarity grants. Uniques carry
// fixed bonuses instead of rolled affixes, so their cap is zero.
func (r Rarity) AffixCap() int {
	idx := r.Index()
	if idx >= len(affixCaps) {
		return 0
	}
	return affixCaps[idx]
}

func RollRarity(r *rand.Rand, ctx Context) Rarity {
	boost := ctx.rarityBoost()
	step, ok := rng.PickWeighted(r, rarityLadder, func(s rarityStep) float64 {
		if s.Rarity == RarityCommon {
			return s.Weight
		}
		return s.Weight * boost
	})
	if !ok {
		return RarityCommon
	}
	return step.Rarity
}
