package dungeon

import (
	"math"

	"gloomhold/internal/domain/combat"
)

// EnemyDefinition is the static data for one monster type. The catalog is an
// ordered slice so uniform draws stay deterministic under a fixed stream.
type EnemyDefinition struct {
	TypeID      string           `json:"type_id"`
	Name        string           `json:"name"`
	BaseHP      int              `json:"base_hp"`
	BaseAttack  int              `json:"base_attack"`
	BaseDefense int              `json:"base_defense"`
	Speed       int              `json:"speed"`
	BaseLevel   int              `json:"base_level"`
	MinDepth    int              `json:"min_depth"`
	Undead      bool             `json:"undead,omitempty"`
	Boss        bool             `json:"boss,omitempty"`
	BossTier    int              `json:"boss_tier,omitempty"`
	Profile     combat.AIProfile `json:"profile"`
	Abilities   []combat.Ability `json:"abilities,omitempty"`
}

var enemyCatalog = []EnemyDefinition{
	{
		TypeID: "slime", Name: "Slime", BaseHP: 10, BaseAttack: 3, BaseDefense: 1, Speed: 2, BaseLevel: 1, MinDepth: 1,
		Profile: combat.AIProfile{Behavior: combat.BehaviorAggressive, Aggressiveness: 0.7},
	},
	{
		TypeID: "giant_rat", Name: "Giant Rat", BaseHP: 8, BaseAttack: 4, BaseDefense: 0, Speed: 6, BaseLevel: 1, MinDepth: 1,
		Profile: combat.AIProfile{Behavior: combat.BehaviorAggressive, Aggressiveness: 0.8, FleeThreshold: 0.15},
	},
	{
		TypeID: "goblin", Name: "Goblin", BaseHP: 12, BaseAttack: 5, BaseDefense: 2, Speed: 4, BaseLevel: 1, MinDepth: 1,
		Profile: combat.AIProfile{Behavior: combat.BehaviorAggressive, Aggressiveness: 0.75, Defensiveness: 0.2, FleeThreshold: 0.2},
	},
	{
		TypeID: "skeleton", Name: "Skeleton", BaseHP: 14, BaseAttack: 6, BaseDefense: 3, Speed: 3, BaseLevel: 2, MinDepth: 2, Undead: true,
		Profile: combat.AIProfile{Behavior: combat.BehaviorDefensive, Aggressiveness: 0.5, Defensiveness: 0.5},
	},
	{
		TypeID: "orc", Name: "Orc", BaseHP: 20, BaseAttack: 8, BaseDefense: 4, Speed: 3, BaseLevel: 3, MinDepth: 3,
		Profile: combat.AIProfile{Behavior: combat.BehaviorAggressive, Aggressiveness: 0.85, Defensiveness: 0.25, FleeThreshold: 0.1},
		Abilities: []combat.Ability{
			{ID: "heavy_blow", Name: "Heavy Blow", Effect: combat.EffectStun, Chance: 0.15, Duration: 2},
		},
	},
	{
		TypeID: "wraith", Name: "Wraith", BaseHP: 16, BaseAttack: 9, BaseDefense: 2, Speed: 5, BaseLevel: 4, MinDepth: 4, Undead: true,
		Profile: combat.AIProfile{Behavior: combat.BehaviorRanged, Aggressiveness: 0.6, RangedPreference: 0.6},
		Abilities: []combat.Ability{
			{ID: "chill_touch", Name: "Chill Touch", Effect: combat.EffectSlow, Chance: 0.35, Duration: 2},
			{ID: "curse", Name: "Curse", Effect: combat.EffectWeaken, Chance: 0.25, Duration: 2},
		},
	},
	{
		TypeID: "troll", Name: "Troll", BaseHP: 34, BaseAttack: 10, BaseDefense: 5, Speed: 2, BaseLevel: 5, MinDepth: 5,
		Profile: combat.AIProfile{Behavior: combat.BehaviorDefensive, Aggressiveness: 0.6, Defensiveness: 0.5, RangedPreference: 0.3},
		Abilities: []combat.Ability{
			{ID: "regrowth", Name: "Regrowth", Effect: combat.EffectRegen, BaseDamage: 3, Duration: 3, SelfTarget: true},
		},
	},
	{
		TypeID: "ogre", Name: "Ogre", BaseHP: 40, BaseAttack: 13, BaseDefense: 5, Speed: 2, BaseLevel: 6, MinDepth: 6,
		Profile: combat.AIProfile{Behavior: combat.BehaviorAggressive, Aggressiveness: 0.9, FleeThreshold: 0.05},
		Abilities: []combat.Ability{
			{ID: "smash", Name: "Smash", Effect: combat.EffectStun, Chance: 0.2, Duration: 2},
		},
	},
	{
		TypeID: "bone_colossus", Name: "Bone Colossus", BaseHP: 60, BaseAttack: 12, BaseDefense: 6, Speed: 2, BaseLevel: 4, MinDepth: 3,
		Undead: true, Boss: true, BossTier: 1,
		Profile: combat.AIProfile{Behavior: combat.BehaviorBoss},
		Abilities: []combat.Ability{
			{ID: "bone_shard", Name: "Bone Shard", Effect: combat.EffectBleed, Chance: 0.4, BaseDamage: 2, Duration: 3},
			{ID: "rattle", Name: "Rattle", Effect: combat.EffectWeaken, Chance: 0.3, Duration: 2},
		},
	},
	{
		TypeID: "crypt_lord", Name: "Crypt Lord", BaseHP: 100, BaseAttack: 16, BaseDefense: 8, Speed: 3, BaseLevel: 7, MinDepth: 6,
		Undead: true, Boss: true, BossTier: 2,
		Profile: combat.AIProfile{Behavior: combat.BehaviorBoss},
		Abilities: []combat.Ability{
			{ID: "plague_breath", Name: "Plague Breath", Effect: combat.EffectPoison, Chance: 0.5, BaseDamage: 3, Duration: 3},
			{ID: "entomb", Name: "Entomb", Effect: combat.EffectStun, Chance: 0.25, Duration: 2},
		},
	},
	{
		TypeID: "abyss_tyrant", Name: "Abyss Tyrant", BaseHP: 160, BaseAttack: 22, BaseDefense: 10, Speed: 4, BaseLevel: 10, MinDepth: 9,
		Boss: true, BossTier: 3,
		Profile: combat.AIProfile{Behavior: combat.BehaviorBoss},
		Abilities: []combat.Ability{
			{ID: "hellfire", Name: "Hellfire", Effect: combat.EffectBurn, Chance: 0.5, BaseDamage: 4, Duration: 3},
			{ID: "terror", Name: "Terror", Effect: combat.EffectWeaken, Chance: 0.4, Duration: 2},
			{ID: "dread_grip", Name: "Dread Grip", Effect: combat.EffectStun, Chance: 0.2, Duration: 2},
		},
	},
}

func AllEnemies() []EnemyDefinition {
	out := make([]EnemyDefinition, len(enemyCatalog))
	copy(out, enemyCatalog)
	return out
}

func EnemyByType(typeID string) (EnemyDefinition, bool) {
	for _, d := range enemyCatalog {
		if d.TypeID == typeID {
			return d, true
		}
	}
	return EnemyDefinition{}, false
}

func regularEnemiesForDepth(depth int) []EnemyDefinition {
	out := make([]EnemyDefinition, 0, len(enemyCatalog))
	for _, d := range enemyCatalog {
		if !d.Boss && d.MinDepth <= depth {
			out = append(out, d)
		}
	}
	return out
}

func bossForDepth(depth int) EnemyDefinition {
	tier := 3
	switch {
	case depth <= BossTierOneMaxDepth:
		tier = 1
	case depth <= BossTierTwoMaxDepth:
		tier = 2
	}
	for _, d := range enemyCatalog {
		if d.Boss && d.BossTier == tier {
			return d
		}
	}
	return enemyCatalog[len(enemyCatalog)-1]
}

// ScaleEnemyStats adjusts hp/attack/defense for the player's level. Speed is
// never scaled. The factor floors at 0.5 so über-leveled players still meet
// resistance.
func ScaleEnemyStats(def EnemyDefinition, playerLevel int) (hp, attack, defense int) {
	factor := 1 + float64(playerLevel-def.BaseLevel)*LevelScalePerLevel
	if factor < LevelScaleFloor {
		factor = LevelScaleFloor
	}
	hp = scaleStat(def.BaseHP, factor)
	attack = scaleStat(def.BaseAttack, factor)
	defense = scaleStat(def.BaseDefense, factor)
	return hp, attack, defense
}

// Spawn builds a live combatant from a definition, scaled to the player.
func Spawn(def EnemyDefinition, instanceID string, playerLevel int) *combat.Combatant {
	hp, attack, defense := ScaleEnemyStats(def, playerLevel)
	profile := def.Profile
	if def.Boss || def.Undead {
		profile.FleeThreshold = 0
	}
	return &combat.Combatant{
		ID:        instanceID,
		Name:      def.Name,
		Kind:      combat.KindEnemy,
		TypeID:    def.TypeID,
		HP:        hp,
		MaxHP:     hp,
		Attack:    attack,
		Defense:   defense,
		Speed:     def.Speed,
		Level:     def.BaseLevel,
		Abilities: append([]combat.Ability(nil), def.Abilities...),
		Profile:   &profile,
	}
}

func scaleStat(base int, factor float64) int {
	v := int(math.Round(float64(base) * factor))
	if v < 1 && base > 0 {
		v = 1
	}
	return v
}
