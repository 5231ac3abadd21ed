package combat

import "fmt"

type StatusEffectType string

const (
	EffectPoison StatusEffectType = "poison"
	EffectBurn   StatusEffectType = "burn"
	EffectBleed  StatusEffectType = "bleed"
	EffectRegen  StatusEffectType = "regen"
	EffectStun   StatusEffectType = "stun"
	EffectWeaken StatusEffectType = "weaken"
	EffectRally  StatusEffectType = "rally"
	EffectSlow   StatusEffectType = "slow"
	EffectHaste  StatusEffectType = "haste"
	EffectGuard  StatusEffectType = "guard"
)

type EffectCategory string

const (
	CategoryDamageOverTime EffectCategory = "dot"
	CategoryHealOverTime   EffectCategory = "hot"
	CategoryAttack         EffectCategory = "attack"
	CategorySpeed          EffectCategory = "speed"
	CategoryIncoming       EffectCategory = "incoming"
	CategoryControl        EffectCategory = "control"
)

type StatusEffectInstance struct {
	Type        StatusEffectType `json:"type"`
	Remaining   int              `json:"remaining"`
	Stacks      int              `json:"stacks"`
	BaseDamage  int              `json:"base_damage,omitempty"`
	SourceID    string           `json:"source_id,omitempty"`
	AppliedTurn int              `json:"applied_turn"`
}

type effectDefinition struct {
	Category  EffectCategory
	Stackable bool
	StackCap  int
	Delta     float64
	Replaces  StatusEffectType
}

var effectDefinitions = map[StatusEffectType]effectDefinition{
	EffectPoison: {Category: CategoryDamageOverTime, Stackable: true, StackCap: DoTStackCap},
	EffectBurn:   {Category: CategoryDamageOverTime, Stackable: true, StackCap: DoTStackCap},
	EffectBleed:  {Category: CategoryDamageOverTime, Stackable: true, StackCap: DoTStackCap},
	EffectRegen:  {Category: CategoryHealOverTime},
	EffectStun:   {Category: CategoryControl},
	EffectWeaken: {Category: CategoryAttack, Delta: -0.25, Replaces: EffectRally},
	EffectRally:  {Category: CategoryAttack, Delta: 0.25, Replaces: EffectWeaken},
	EffectSlow:   {Category: CategorySpeed, Delta: -0.3, Replaces: EffectHaste},
	EffectHaste:  {Category: CategorySpeed, Delta: 0.3, Replaces: EffectSlow},
	EffectGuard:  {Category: CategoryIncoming, Delta: GuardIncomingDelta},
}

// ApplyEffect inserts or refreshes one instance per the stacking rules:
// stackable types gain a stack up to their cap and refresh duration,
// everything else replaces its previous instance. Unknown types are ignored.
func ApplyEffect(c *Combatant, e StatusEffectInstance) (StatusEffectInstance, bool) {
	def, ok := effectDefinitions[e.Type]
	if !ok {
		return StatusEffectInstance{}, false
	}
	if e.Stacks <= 0 {
		e.Stacks = 1
	}
	if def.Replaces != "" {
		removeEffect(c, def.Replaces)
	}
	for i := range c.Effects {
		if c.Effects[i].Type != e.Type {
			continue
		}
		if def.Stackable && c.Effects[i].Stacks < def.StackCap {
			c.Effects[i].Stacks++
		}
		c.Effects[i].Remaining = e.Remaining
		c.Effects[i].AppliedTurn = e.AppliedTurn
		c.Effects[i].SourceID = e.SourceID
		if e.BaseDamage > 0 {
			c.Effects[i].BaseDamage = e.BaseDamage
		}
		return c.Effects[i], true
	}
	if def.Stackable && def.StackCap > 0 && e.Stacks > def.StackCap {
		e.Stacks = def.StackCap
	}
	c.Effects = append(c.Effects, e)
	return e, true
}

type TickResult struct {
	Damage int      `json:"damage"`
	Log    []string `json:"log,omitempty"`
}

// TickEffects runs once per combatant at end of turn: DoTs deal
// baseDamage*stacks, regen restores, every duration drops by one and
// expired instances are removed. HP never ticks below zero.
func TickEffects(c *Combatant) TickResult {
	var out TickResult
	kept := c.Effects[:0]
	for _, e := range c.Effects {
		def := effectDefinitions[e.Type]
		switch def.Category {
		case CategoryDamageOverTime:
			dmg := e.BaseDamage * e.Stacks
			if dmg > 0 {
				c.HP -= dmg
				if c.HP < 0 {
					c.HP = 0
				}
				out.Damage += dmg
				out.Log = append(out.Log, fmt.Sprintf("%s takes %d %s damage (%d stacks)", c.Name, dmg, e.Type, e.Stacks))
			}
		case CategoryHealOverTime:
			heal := e.BaseDamage * e.Stacks
			if heal > 0 && c.HP > 0 {
				c.HP += heal
				if c.HP > c.MaxHP {
					c.HP = c.MaxHP
				}
				out.Log = append(out.Log, fmt.Sprintf("%s recovers %d hp from %s", c.Name, heal, e.Type))
			}
		}
		e.Remaining--
		if e.Remaining > 0 {
			kept = append(kept, e)
		} else {
			out.Log = append(out.Log, fmt.Sprintf("%s wears off %s", e.Type, c.Name))
		}
	}
	c.Effects = kept
	return out
}

func IsStunned(c *Combatant) bool {
	for _, e := range c.Effects {
		if effectDefinitions[e.Type].Category == CategoryControl {
			return true
		}
	}
	return false
}

// ConsumeStun removes the control effect that just cost the combatant
// its action. Stuns are spent without any roll.
func ConsumeStun(c *Combatant) {
	kept := c.Effects[:0]
	for _, e := range c.Effects {
		if effectDefinitions[e.Type].Category == CategoryControl {
			continue
		}
		kept = append(kept, e)
	}
	c.Effects = kept
}

func AttackModifier(c *Combatant) float64 {
	return categoryModifier(c, CategoryAttack)
}

func SpeedModifier(c *Combatant) float64 {
	return categoryModifier(c, CategorySpeed)
}

func IncomingModifier(c *Combatant) float64 {
	return categoryModifier(c, CategoryIncoming)
}

// Same-category deltas sum per stack before conversion, so two +25%
// instances read as one x1.5 multiplier rather than x1.25 twice.
func categoryModifier(c *Combatant, cat EffectCategory) float64 {
	sum := 0.0
	for _, e := range c.Effects {
		def := effectDefinitions[e.Type]
		if def.Category != cat {
			continue
		}
		sum += def.Delta * float64(e.Stacks)
	}
	m := 1 + sum
	if m < 0 {
		m = 0
	}
	return m
}

func removeEffect(c *Combatant, t StatusEffectType) {
	kept := c.Effects[:0]
	for _, e := range c.Effects {
		if e.Type == t {
			continue
		}
		kept = append(kept, e)
	}
	c.Effects = kept
}
