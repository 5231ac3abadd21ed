package loot

import (
	"math/rand"

	"gloomhold/internal/rng"
)

type Material struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	MinDepth int     `json:"min_depth"`
	Weight   float64 `json:"weight"`
	Zone     string  `json:"zone,omitempty"`
}

var materialCatalog = []Material{
	{ID: "iron_scrap", Name: "Iron Scrap", MinDepth: 1, Weight: 30},
	{ID: "leather_strip", Name: "Leather Strip", MinDepth: 1, Weight: 30},
	{ID: "bone_meal", Name: "Bone Meal", MinDepth: 2, Weight: 22},
	{ID: "silver_thread", Name: "Silver Thread", MinDepth: 3, Weight: 16},
	{ID: "arcane_dust", Name: "Arcane Dust", MinDepth: 4, Weight: 12},
	{ID: "deep_iron", Name: "Deep Iron", MinDepth: 5, Weight: 9},
	{ID: "soul_fragment", Name: "Soul Fragment", MinDepth: 6, Weight: 6},
	{ID: "dragon_scale", Name: "Dragon Scale", MinDepth: 8, Weight: 3},
}

// Zone materials only drop inside their zone, via the bonus roll.
var zoneMaterials = []Material{
	{ID: "grave_dust", Name: "Grave Dust", MinDepth: 1, Weight: 1, Zone: "cursed_crypt"},
	{ID: "gold_leaf", Name: "Gold Leaf", MinDepth: 1, Weight: 1, Zone: "gilded_vault"},
	{ID: "ember_shard", Name: "Ember Shard", MinDepth: 1, Weight: 1, Zone: "ember_depths"},
	{ID: "rime_crystal", Name: "Rime Crystal", MinDepth: 1, Weight: 1, Zone: "frozen_hollow"},
	{ID: "glowcap_spore", Name: "Glowcap Spore", MinDepth: 1, Weight: 1, Zone: "fungal_warren"},
	{ID: "pearl_of_the_deep", Name: "Pearl of the Deep", MinDepth: 1, Weight: 1, Zone: "sunken_shrine"},
}

// AllMaterials returns the common and zone catalogs in declaration order.
func AllMaterials() []Material {
	out := make([]Material, 0, len(materialCatalog)+len(zoneMaterials))
	out = append(out, materialCatalog...)
	out = append(out, zoneMaterials...)
	return out
}

// RollMaterials draws the half-chance common material, then the zone
// bonus material when the run is inside a themed zone.
func RollMaterials(r *rand.Rand, ctx Context) []Material {
	var out []Material
	if r.Float64() < MaterialBaseChance {
		m, ok := rng.PickWeighted(r, materialCatalog, func(m Material) float64 {
			if m.MinDepth > ctx.Depth {
				return 0
			}
			return m.Weight
		})
		if ok {
			out = append(out, m)
		}
	}
	if ctx.ZoneType != "" && r.Float64() < ZoneMaterialBonusRoll {
		for _, m := range zoneMaterials {
			if m.Zone == ctx.ZoneType {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
