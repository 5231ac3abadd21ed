package dungeon

import (
	"math/rand"
	"testing"

	"gloomhold/internal/domain/combat"
)

func TestEncounterCountScalesWithDepth(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		r := rand.New(rand.NewSource(seed))
		if n := len(GenerateEncounter(r, 1, 1)); n != 1 {
			t.Fatalf("seed %d: depth 1 must spawn exactly one enemy, got %d", seed, n)
		}
	}
	for seed := int64(0); seed < 30; seed++ {
		r := rand.New(rand.NewSource(seed))
		specs := GenerateEncounter(r, 2, 8)
		if len(specs) < 1 || len(specs) > MaxEnemiesPerRoom {
			t.Fatalf("seed %d: depth 8 spawn count %d out of range", seed, len(specs))
		}
	}
}

func TestEncounterRespectsDepthEligibility(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		r := rand.New(rand.NewSource(seed))
		for _, spec := range GenerateEncounter(r, 1, 2) {
			if spec.Definition.MinDepth > 2 {
				t.Fatalf("seed %d: %s requires depth %d but spawned at 2", seed, spec.Definition.TypeID, spec.Definition.MinDepth)
			}
			if spec.Definition.Boss {
				t.Fatalf("seed %d: boss %s in a regular room", seed, spec.Definition.TypeID)
			}
		}
	}
}

func TestBossRoomRules(t *testing.T) {
	if IsBossRoom(5, 2) {
		t.Fatalf("no boss rooms before depth 3")
	}
	if !IsBossRoom(5, 3) {
		t.Fatalf("fifth room at depth 3 must be a boss room")
	}
	if IsBossRoom(4, 3) {
		t.Fatalf("room 4 at depth 3 must not be a boss room")
	}
	if !IsBossRoom(1, 9) {
		t.Fatalf("every room from depth 9 is a boss room")
	}
}

func TestBossEncounterTierByDepth(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	shallow := GenerateEncounter(r, 5, 3)
	if len(shallow) != 1 || !shallow[0].Definition.Boss || shallow[0].Definition.BossTier != 1 {
		t.Fatalf("depth 3 boss room: got %+v", shallow)
	}
	mid := GenerateEncounter(r, 5, 7)
	if mid[0].Definition.BossTier != 2 {
		t.Fatalf("depth 7 boss tier = %d, want 2", mid[0].Definition.BossTier)
	}
	deep := GenerateEncounter(r, 1, 10)
	if deep[0].Definition.BossTier != 3 {
		t.Fatalf("depth 10 boss tier = %d, want 3", deep[0].Definition.BossTier)
	}
}

func TestDuplicateSpawnsGetDistinctInstanceIDs(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		r := rand.New(rand.NewSource(seed))
		ids := map[string]bool{}
		for _, spec := range GenerateEncounter(r, 2, 7) {
			if ids[spec.InstanceID] {
				t.Fatalf("seed %d: duplicate instance id %s", seed, spec.InstanceID)
			}
			ids[spec.InstanceID] = true
		}
	}
}

func TestScaleEnemyStatsLeavesSpeedAlone(t *testing.T) {
	def, ok := EnemyByType("goblin")
	if !ok {
		t.Fatalf("goblin missing from catalog")
	}
	hp, attack, defense := ScaleEnemyStats(def, def.BaseLevel+5)
	if hp <= def.BaseHP || attack <= def.BaseAttack || defense <= def.BaseDefense {
		t.Fatalf("expected +50%% scaling at +5 levels, got hp=%d atk=%d def=%d", hp, attack, defense)
	}
	c := Spawn(def, "goblin-1", def.BaseLevel+5)
	if c.Speed != def.Speed {
		t.Fatalf("speed must never scale, got %d want %d", c.Speed, def.Speed)
	}
}

func TestScaleFactorFloors(t *testing.T) {
	def, _ := EnemyByType("abyss_tyrant")
	hp, _, _ := ScaleEnemyStats(def, 1)
	if hp < def.BaseHP/2 {
		t.Fatalf("scale factor must floor at 0.5, hp = %d", hp)
	}
}

func TestSpawnedUndeadAndBossesNeverFlee(t *testing.T) {
	for _, typeID := range []string{"skeleton", "wraith", "bone_colossus", "crypt_lord", "abyss_tyrant"} {
		def, ok := EnemyByType(typeID)
		if !ok {
			t.Fatalf("%s missing from catalog", typeID)
		}
		c := Spawn(def, typeID+"-1", 3)
		if c.Profile.FleeThreshold != 0 {
			t.Fatalf("%s spawned with flee threshold %v", typeID, c.Profile.FleeThreshold)
		}
		if def.Boss && c.Profile.Behavior != combat.BehaviorBoss {
			t.Fatalf("%s lost its boss behavior", typeID)
		}
	}
}
