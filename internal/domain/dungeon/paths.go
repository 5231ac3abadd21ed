package dungeon

import (
	"fmt"
	"math/rand"

	"gloomhold/internal/rng"
)

type ZoneType string

const (
	ZoneCursedCrypt  ZoneType = "cursed_crypt"
	ZoneGildedVault  ZoneType = "gilded_vault"
	ZoneEmberDepths  ZoneType = "ember_depths"
	ZoneFrozenHollow ZoneType = "frozen_hollow"
	ZoneFungalWarren ZoneType = "fungal_warren"
	ZoneSunkenShrine ZoneType = "sunken_shrine"
)

type zoneEntry struct {
	Type   ZoneType
	Weight float64
}

var zoneTable = []zoneEntry{
	{ZoneCursedCrypt, 20},
	{ZoneGildedVault, 10},
	{ZoneEmberDepths, 18},
	{ZoneFrozenHollow, 18},
	{ZoneFungalWarren, 22},
	{ZoneSunkenShrine, 12},
}

type PathOption struct {
	ID          string     `json:"id"`
	ZoneType    ZoneType   `json:"zone_type"`
	Difficulty  Difficulty `json:"difficulty"`
	RarityBoost float64    `json:"rarity_boost"`
}

// AllZones returns the zone types in declaration order.
func AllZones() []ZoneType {
	out := make([]ZoneType, len(zoneTable))
	for i, z := range zoneTable {
		out[i] = z.Type
	}
	return out
}

// GenerateBranchingPaths offers alternative special zones: none before depth
// 5, two from 5, three from 8. Zones never repeat within one offer, run one
// difficulty tier above the floor, and carry a rarity boost.
func GenerateBranchingPaths(r *rand.Rand, depth int) []PathOption {
	if depth < BranchMinDepth {
		return nil
	}
	count := 2
	if depth >= BranchThreeDepth {
		count = 3
	}
	taken := map[ZoneType]bool{}
	out := make([]PathOption, 0, count)
	for i := 0; i < count; i++ {
		entry, ok := rng.PickWeighted(r, zoneTable, func(z zoneEntry) float64 {
			if taken[z.Type] {
				return 0
			}
			return z.Weight
		})
		if !ok {
			break
		}
		taken[entry.Type] = true
		out = append(out, PathOption{
			ID:          fmt.Sprintf("path-%d", i+1),
			ZoneType:    entry.Type,
			Difficulty:  DifficultyForDepth(depth).NextTier(),
			RarityBoost: RarityBoosts[r.Intn(len(RarityBoosts))],
		})
	}
	return out
}
