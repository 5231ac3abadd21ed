package dungeon

import (
	"fmt"
	"math/rand"
)

type EnemySpec struct {
	InstanceID string          `json:"instance_id"`
	Definition EnemyDefinition `json:"definition"`
}

// IsBossRoom reports whether a room may only hold a boss: every fifth room
// once depth 3 is reached, and every room from depth 9 on.
func IsBossRoom(roomID, depth int) bool {
	if depth >= BossEveryRoomFrom {
		return true
	}
	return depth >= BossMinDepth && roomID%BossRoomInterval == 0
}

// GenerateEncounter decides what a room spawns. Boss rooms hold exactly one
// boss of the depth's tier; everything else draws 1-4 regular types
// uniformly from the depth-eligible pool, one more every two depths.
func GenerateEncounter(r *rand.Rand, roomID, depth int) []EnemySpec {
	if IsBossRoom(roomID, depth) {
		def := bossForDepth(depth)
		return []EnemySpec{{InstanceID: fmt.Sprintf("%s-1", def.TypeID), Definition: def}}
	}

	count := 1 + (depth-1)/DepthsPerExtraFoe
	if count > MaxEnemiesPerRoom {
		count = MaxEnemiesPerRoom
	}
	if count > 1 && r.Intn(EncounterJitterOdd) == 0 {
		count--
	}

	pool := regularEnemiesForDepth(depth)
	if len(pool) == 0 {
		return nil
	}
	specs := make([]EnemySpec, 0, count)
	seen := map[string]int{}
	for i := 0; i < count; i++ {
		def := pool[r.Intn(len(pool))]
		seen[def.TypeID]++
		specs = append(specs, EnemySpec{
			InstanceID: fmt.Sprintf("%s-%d", def.TypeID, seen[def.TypeID]),
			Definition: def,
		})
	}
	return specs
}
