package loot

import (
	"math/rand"
	"testing"
)

func TestMaterialsRespectDepthGate(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 500; i++ {
		for _, m := range RollMaterials(r, Context{Depth: 1}) {
			if m.MinDepth > 1 {
				t.Fatalf("material %s gated to depth %d dropped at depth 1", m.ID, m.MinDepth)
			}
		}
	}
}

func TestZoneMaterialOnlyDropsInItsZone(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	sawEmber := false
	for i := 0; i < 600; i++ {
		for _, m := range RollMaterials(r, Context{Depth: 3, ZoneType: "ember_depths"}) {
			if m.Zone != "" && m.Zone != "ember_depths" {
				t.Fatalf("foreign zone material %s dropped in ember_depths", m.ID)
			}
			if m.ID == "ember_shard" {
				sawEmber = true
			}
		}
	}
	if !sawEmber {
		t.Fatal("expected ember shards inside ember_depths over 600 rolls")
	}

	for i := 0; i < 600; i++ {
		for _, m := range RollMaterials(r, Context{Depth: 3}) {
			if m.Zone != "" {
				t.Fatalf("zone material %s dropped outside any zone", m.ID)
			}
		}
	}
}

func TestMaterialBaseRateNearHalf(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	hits := 0
	const n = 4000
	for i := 0; i < n; i++ {
		if len(RollMaterials(r, Context{Depth: 5})) > 0 {
			hits++
		}
	}
	frac := float64(hits) / float64(n)
	if frac < 0.44 || frac > 0.56 {
		t.Fatalf("expected roughly half the kills to shed a material, got %.3f", frac)
	}
}

func TestDeepMaterialsAppearAtDepth(t *testing.T) {
	r := rand.New(rand.NewSource(19))
	seen := map[string]bool{}
	for i := 0; i < 4000; i++ {
		for _, m := range RollMaterials(r, Context{Depth: 8}) {
			seen[m.ID] = true
		}
	}
	for _, id := range []string{"iron_scrap", "soul_fragment", "dragon_scale"} {
		if !seen[id] {
			t.Fatalf("expected %s in the depth-8 pool over 4000 rolls, saw %v", id, seen)
		}
	}
}
