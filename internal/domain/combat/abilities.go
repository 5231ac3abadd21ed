package combat

import (
	"fmt"
	"math/rand"
)

type Ability struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Effect     StatusEffectType `json:"effect"`
	Chance     float64          `json:"chance"`
	BaseDamage int              `json:"base_damage,omitempty"`
	Duration   int              `json:"duration"`
	SelfTarget bool             `json:"self_target,omitempty"`
}

type EffectResult struct {
	Ability string           `json:"ability"`
	Effect  StatusEffectType `json:"effect"`
	Target  string           `json:"target"`
	Stacks  int              `json:"stacks"`
	Log     string           `json:"log"`
}

// RollAttackEffects rolls every candidate ability against the target in the
// pool's declared order. Each roll is independent: base chance minus a small
// per-point defense resist, boosted on a critical hit. Self-targeted
// abilities never ride on an attack.
func RollAttackEffects(pool []Ability, target *Combatant, sourceID string, turn int, targetDefense int, wasCritical bool, r *rand.Rand) []EffectResult {
	var out []EffectResult
	for _, a := range pool {
		if a.SelfTarget {
			continue
		}
		roll := r.Float64()
		chance := a.Chance - float64(targetDefense)*EffectResistPerDefense
		if wasCritical {
			chance *= CritEffectChanceBonus
		}
		if chance > MaxEffectChance {
			chance = MaxEffectChance
		}
		if chance <= 0 || roll >= chance {
			continue
		}
		applied, ok := ApplyEffect(target, StatusEffectInstance{
			Type:        a.Effect,
			Remaining:   a.Duration,
			Stacks:      1,
			BaseDamage:  a.BaseDamage,
			SourceID:    sourceID,
			AppliedTurn: turn,
		})
		if !ok {
			continue
		}
		out = append(out, EffectResult{
			Ability: a.ID,
			Effect:  a.Effect,
			Target:  target.ID,
			Stacks:  applied.Stacks,
			Log:     fmt.Sprintf("%s is afflicted by %s (%d stacks)", target.Name, a.Effect, applied.Stacks),
		})
	}
	return out
}

// CastAbility applies one ability directly, no chance roll. Buffs land on
// the caster, everything else on the target.
func CastAbility(actor, target *Combatant, a Ability, turn int) EffectResult {
	recipient := target
	if a.SelfTarget {
		recipient = actor
	}
	applied, ok := ApplyEffect(recipient, StatusEffectInstance{
		Type:        a.Effect,
		Remaining:   a.Duration,
		Stacks:      1,
		BaseDamage:  a.BaseDamage,
		SourceID:    actor.ID,
		AppliedTurn: turn,
	})
	if !ok {
		return EffectResult{Ability: a.ID, Effect: a.Effect, Target: recipient.ID}
	}
	return EffectResult{
		Ability: a.ID,
		Effect:  a.Effect,
		Target:  recipient.ID,
		Stacks:  applied.Stacks,
		Log:     fmt.Sprintf("%s uses %s on %s", actor.Name, a.Name, recipient.Name),
	}
}
