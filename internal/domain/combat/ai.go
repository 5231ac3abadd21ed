package combat

import "math/rand"

type Behavior string

const (
	BehaviorAggressive Behavior = "aggressive"
	BehaviorDefensive  Behavior = "defensive"
	BehaviorRanged     Behavior = "ranged"
	BehaviorSupport    Behavior = "support"
	BehaviorBoss       Behavior = "boss"
)

type AIProfile struct {
	Behavior         Behavior `json:"behavior"`
	Aggressiveness   float64  `json:"aggressiveness"`
	Defensiveness    float64  `json:"defensiveness"`
	RangedPreference float64  `json:"ranged_preference"`
	FleeThreshold    float64  `json:"flee_threshold"`
}

type AIAction string

const (
	AIAttack  AIAction = "attack"
	AIDefend  AIAction = "defend"
	AIAbility AIAction = "ability"
	AIFlee    AIAction = "flee"
)

// Snapshot is the battle view one enemy decides from. PredictedDamage is a
// rough estimate of the player's next hit against this enemy.
type Snapshot struct {
	HPFraction      float64
	CurrentHP       int
	PredictedDamage int
	HasAbilities    bool
}

// Decide maps one profile and one snapshot to one discrete action. It never
// mutates its inputs and draws only from the rng it is handed, so identical
// inputs replay identical decisions.
func Decide(p AIProfile, snap Snapshot, r *rand.Rand) AIAction {
	if p.Behavior == BehaviorBoss {
		return decideBossPhase(snap, r)
	}
	if p.FleeThreshold > 0 && snap.HPFraction < p.FleeThreshold {
		return AIFlee
	}
	if snap.HPFraction < DefendHPFraction && float64(snap.PredictedDamage) > DefendDamageFraction*float64(snap.CurrentHP) {
		if r.Float64() < p.Defensiveness {
			return AIDefend
		}
	}
	if snap.HasAbilities && r.Float64() < p.RangedPreference {
		return AIAbility
	}
	if r.Float64() < p.Defensiveness*DefendBias {
		return AIDefend
	}
	return AIAttack
}

// Bosses run four hp phases instead of the scalar heuristics, trending
// aggressive, then defensive, then desperate. They never flee.
func decideBossPhase(snap Snapshot, r *rand.Rand) AIAction {
	var attack, defend, ability float64
	switch {
	case snap.HPFraction > BossPhaseHealthy:
		attack, defend, ability = 0.80, 0.05, 0.15
	case snap.HPFraction > BossPhaseWounded:
		attack, defend, ability = 0.60, 0.15, 0.25
	case snap.HPFraction > BossPhaseCornered:
		attack, defend, ability = 0.40, 0.30, 0.30
	default:
		attack, defend, ability = 0.65, 0.05, 0.30
	}
	if !snap.HasAbilities {
		attack += ability
		ability = 0
	}
	roll := r.Float64() * (attack + defend + ability)
	switch {
	case roll < attack:
		return AIAttack
	case roll < attack+defend:
		return AIDefend
	default:
		return AIAbility
	}
}
