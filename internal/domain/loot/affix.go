package loot

import (
	"math/rand"

	"gloomhold/internal/rng"
)

type AffixSlot string

const (
	AffixPrefix AffixSlot = "prefix"
	AffixSuffix AffixSlot = "suffix"
)

type Stat string

const (
	StatAttack    Stat = "attack"
	StatDefense   Stat = "defense"
	StatMaxHP     Stat = "max_hp"
	StatSpeed     Stat = "speed"
	StatMagicFind Stat = "magic_find"
)

type StatBonus struct {
	Stat   Stat `json:"stat"`
	Amount int  `json:"amount"`
}

type Affix struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Slot       AffixSlot   `json:"slot"`
	Tier       int         `json:"tier"`
	Rarity     Rarity      `json:"rarity"`
	Bonuses    []StatBonus `json:"bonuses"`
	DamageType string      `json:"damage_type,omitempty"`
}

var prefixPool = []Affix{
	{ID: "jagged", Name: "Jagged", Slot: AffixPrefix, Tier: 1, Rarity: RarityCommon, Bonuses: []StatBonus{{StatAttack, 2}}},
	{ID: "stalwart", Name: "Stalwart", Slot: AffixPrefix, Tier: 1, Rarity: RarityCommon, Bonuses: []StatBonus{{StatDefense, 2}}},
	{ID: "keen", Name: "Keen", Slot: AffixPrefix, Tier: 1, Rarity: RarityRare, Bonuses: []StatBonus{{StatAttack, 3}, {StatSpeed, 1}}},
	{ID: "vicious", Name: "Vicious", Slot: AffixPrefix, Tier: 2, Rarity: RarityCommon, Bonuses: []StatBonus{{StatAttack, 4}}},
	{ID: "burning", Name: "Burning", Slot: AffixPrefix, Tier: 2, Rarity: RarityUncommon, Bonuses: []StatBonus{{StatAttack, 3}}, DamageType: "fire"},
	{ID: "gilded", Name: "Gilded", Slot: AffixPrefix, Tier: 2, Rarity: RarityUncommon, Bonuses: []StatBonus{{StatMagicFind, 10}}},
	{ID: "brutal", Name: "Brutal", Slot: AffixPrefix, Tier: 3, Rarity: RarityUncommon, Bonuses: []StatBonus{{StatAttack, 7}}},
	{ID: "fortified", Name: "Fortified", Slot: AffixPrefix, Tier: 3, Rarity: RarityUncommon, Bonuses: []StatBonus{{StatDefense, 5}}},
	{ID: "venomous", Name: "Venomous", Slot: AffixPrefix, Tier: 3, Rarity: RarityRare, Bonuses: []StatBonus{{StatAttack, 5}}, DamageType: "poison"},
	{ID: "frozen", Name: "Frozen", Slot: AffixPrefix, Tier: 3, Rarity: RarityRare, Bonuses: []StatBonus{{StatAttack, 4}, {StatSpeed, 1}}, DamageType: "frost"},
	{ID: "savage", Name: "Savage", Slot: AffixPrefix, Tier: 4, Rarity: RarityRare, Bonuses: []StatBonus{{StatAttack, 11}}},
	{ID: "bloodthirsty", Name: "Bloodthirsty", Slot: AffixPrefix, Tier: 4, Rarity: RarityRare, Bonuses: []StatBonus{{StatAttack, 9}, {StatMaxHP, 10}}},
	{ID: "spectral", Name: "Spectral", Slot: AffixPrefix, Tier: 4, Rarity: RarityEpic, Bonuses: []StatBonus{{StatAttack, 6}, {StatSpeed, 2}}},
	{ID: "radiant", Name: "Radiant", Slot: AffixPrefix, Tier: 4, Rarity: RarityEpic, Bonuses: []StatBonus{{StatMagicFind, 20}}},
	{ID: "merciless", Name: "Merciless", Slot: AffixPrefix, Tier: 5, Rarity: RarityEpic, Bonuses: []StatBonus{{StatAttack, 16}}},
	{ID: "runed", Name: "Runed", Slot: AffixPrefix, Tier: 5, Rarity: RarityLegendary, Bonuses: []StatBonus{{StatAttack, 12}, {StatDefense, 6}}},
	{ID: "ancient", Name: "Ancient", Slot: AffixPrefix, Tier: 5, Rarity: RarityLegendary, Bonuses: []StatBonus{{StatMaxHP, 30}}},
	{ID: "exalted", Name: "Exalted", Slot: AffixPrefix, Tier: 5, Rarity: RarityMythic, Bonuses: []StatBonus{{StatAttack, 14}, {StatMagicFind, 15}}},
}

var suffixPool = []Affix{
	{ID: "of_the_fox", Name: "of the Fox", Slot: AffixSuffix, Tier: 1, Rarity: RarityCommon, Bonuses: []StatBonus{{StatSpeed, 1}}},
	{ID: "of_vigor", Name: "of Vigor", Slot: AffixSuffix, Tier: 1, Rarity: RarityCommon, Bonuses: []StatBonus{{StatMaxHP, 8}}},
	{ID: "of_the_owl", Name: "of the Owl", Slot: AffixSuffix, Tier: 1, Rarity: RarityRare, Bonuses: []StatBonus{{StatMagicFind, 8}}},
	{ID: "of_the_bear", Name: "of the Bear", Slot: AffixSuffix, Tier: 2, Rarity: RarityCommon, Bonuses: []StatBonus{{StatMaxHP, 12}}},
	{ID: "of_the_wolf", Name: "of the Wolf", Slot: AffixSuffix, Tier: 2, Rarity: RarityUncommon, Bonuses: []StatBonus{{StatAttack, 3}}},
	{ID: "of_venom", Name: "of Venom", Slot: AffixSuffix, Tier: 2, Rarity: RarityUncommon, Bonuses: []StatBonus{{StatAttack, 2}}, DamageType: "poison"},
	{ID: "of_the_eagle", Name: "of the Eagle", Slot: AffixSuffix, Tier: 3, Rarity: RarityUncommon, Bonuses: []StatBonus{{StatSpeed, 2}}},
	{ID: "of_warding", Name: "of Warding", Slot: AffixSuffix, Tier: 3, Rarity: RarityUncommon, Bonuses: []StatBonus{{StatDefense, 4}}},
	{ID: "of_fortune", Name: "of Fortune", Slot: AffixSuffix, Tier: 3, Rarity: RarityRare, Bonuses: []StatBonus{{StatMagicFind, 15}}},
	{ID: "of_embers", Name: "of Embers", Slot: AffixSuffix, Tier: 3, Rarity: RarityRare, Bonuses: []StatBonus{{StatAttack, 4}}, DamageType: "fire"},
	{ID: "of_the_titan", Name: "of the Titan", Slot: AffixSuffix, Tier: 4, Rarity: RarityRare, Bonuses: []StatBonus{{StatMaxHP, 25}}},
	{ID: "of_swiftness", Name: "of Swiftness", Slot: AffixSuffix, Tier: 4, Rarity: RarityRare, Bonuses: []StatBonus{{StatSpeed, 3}}},
	{ID: "of_the_leech", Name: "of the Leech", Slot: AffixSuffix, Tier: 4, Rarity: RarityEpic, Bonuses: []StatBonus{{StatMaxHP, 15}, {StatAttack, 5}}},
	{ID: "of_the_fortress", Name: "of the Fortress", Slot: AffixSuffix, Tier: 5, Rarity: RarityEpic, Bonuses: []StatBonus{{StatDefense, 9}}},
	{ID: "of_avarice", Name: "of Avarice", Slot: AffixSuffix, Tier: 5, Rarity: RarityLegendary, Bonuses: []StatBonus{{StatMagicFind, 30}}},
	{ID: "of_the_void", Name: "of the Void", Slot: AffixSuffix, Tier: 5, Rarity: RarityLegendary, Bonuses: []StatBonus{{StatAttack, 14}}},
	{ID: "of_kings", Name: "of Kings", Slot: AffixSuffix, Tier: 5, Rarity: RarityMythic, Bonuses: []StatBonus{{StatAttack, 10}, {StatMaxHP, 20}}},
}

// AllAffixes returns both pools in declaration order, prefixes first.
func AllAffixes() []Affix {
	out := make([]Affix, 0, len(prefixPool)+len(suffixPool))
	out = append(out, prefixPool...)
	out = append(out, suffixPool...)
	return out
}

// maxTierForItemLevel is ceil(itemLevel/2), clamped to the top tier.
func maxTierForItemLevel(itemLevel int) int {
	t := (itemLevel + 1) / 2
	if t < 1 {
		t = 1
	}
	if t > MaxAffixTier {
		t = MaxAffixTier
	}
	return t
}

// RollAffixes fills the rarity's affix slots, alternating prefix and suffix.
// Candidates are gated to tier <= ceil(itemLevel/2) and to a rarity within
// one step of the item's; weighting favors exact tier matches 3:1 and exact
// rarity matches 2:1. An exhausted pool yields fewer affixes, never an error.
func RollAffixes(r *rand.Rand, rarity Rarity, itemLevel int) []Affix {
	count := rarity.AffixCap()
	if count == 0 {
		return nil
	}
	maxTier := maxTierForItemLevel(itemLevel)
	rarityIdx := rarity.Index()
	used := map[string]bool{}
	out := make([]Affix, 0, count)

	for i := 0; i < count; i++ {
		pool := prefixPool
		if i%2 == 1 {
			pool = suffixPool
		}
		pick, ok := rng.PickWeighted(r, pool, func(a Affix) float64 {
			if used[a.ID] || a.Tier > maxTier {
				return 0
			}
			gap := a.Rarity.Index() - rarityIdx
			if gap < -1 || gap > 1 {
				return 0
			}
			w := 1.0
			if a.Tier == maxTier {
				w *= AffixTierMatchWeight
			}
			if gap == 0 {
				w *= AffixRarityMatchWeight
			}
			return w
		})
		if !ok {
			continue
		}
		used[pick.ID] = true
		out = append(out, pick)
	}
	return out
}
