package combat

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var (
	ErrInvalidTarget = errors.New("invalid or dead target")
	ErrUnknownAction = errors.New("unknown combat action")
)

type Encounter struct {
	Player  *Combatant   `json:"player"`
	Enemies []*Combatant `json:"enemies"`
	Turn    int          `json:"turn"`
}

func (e *Encounter) LivingEnemies() []*Combatant {
	out := make([]*Combatant, 0, len(e.Enemies))
	for _, en := range e.Enemies {
		if en.Alive() {
			out = append(out, en)
		}
	}
	return out
}

// findTarget resolves an attack target. An empty id means the first living
// enemy in list order.
func (e *Encounter) findTarget(id string) *Combatant {
	for _, en := range e.Enemies {
		if !en.Alive() {
			continue
		}
		if id == "" || en.ID == id {
			return en
		}
	}
	return nil
}

// ResolveTurn consumes one player action and drives the full turn: player
// phase, every living enemy in list order, end-of-turn ticks, removal of the
// dead, outcome. Validation happens before any mutation so an error leaves
// the encounter untouched.
func ResolveTurn(enc *Encounter, act PlayerAction, r *rand.Rand) (TurnResult, error) {
	var target *Combatant
	switch act.Type {
	case PlayerAttack:
		if target = enc.findTarget(act.TargetID); target == nil {
			return TurnResult{}, ErrInvalidTarget
		}
	case PlayerDefend:
	default:
		return TurnResult{}, ErrUnknownAction
	}

	enc.Turn++
	playerRep := ActorReport{ActorID: enc.Player.ID, ActorName: enc.Player.Name}
	var log []string

	switch {
	case IsStunned(enc.Player):
		ConsumeStun(enc.Player)
		playerRep.Action = "stunned"
		log = append(log, fmt.Sprintf("%s is stunned and cannot act", enc.Player.Name))
	case act.Type == PlayerAttack:
		dmg, crit := rollDamage(enc.Player, target, r)
		applyDamage(target, dmg)
		playerRep.Action = "attack"
		playerRep.TargetID = target.ID
		playerRep.Damage = dmg
		playerRep.Critical = crit
		log = append(log, attackLine(enc.Player.Name, target.Name, dmg, crit))
		playerRep.Effects = RollAttackEffects(enc.Player.Abilities, target, enc.Player.ID, enc.Turn, target.Defense, crit, r)
		for _, ef := range playerRep.Effects {
			log = append(log, ef.Log)
		}
	case act.Type == PlayerDefend:
		ApplyEffect(enc.Player, guardInstance(enc.Player.ID, enc.Turn, GuardDuration))
		playerRep.Action = "defend"
		log = append(log, fmt.Sprintf("%s braces for the next blow", enc.Player.Name))
	}

	return finishTurn(enc, playerRep, log, r), nil
}

// ResolveFlee rolls the independent escape chance. Success leaves the
// encounter without a turn; failure burns the player's action and the
// enemies act as usual.
func ResolveFlee(enc *Encounter, r *rand.Rand) (TurnResult, bool) {
	if r.Float64() < FleeSuccessChance {
		return TurnResult{
			Turn:    enc.Turn,
			Outcome: OutcomeOngoing,
			Log:     []string{fmt.Sprintf("%s escapes the encounter", enc.Player.Name)},
		}, true
	}
	enc.Turn++
	playerRep := ActorReport{ActorID: enc.Player.ID, ActorName: enc.Player.Name, Action: "flee"}
	log := []string{fmt.Sprintf("%s fails to escape", enc.Player.Name)}
	return finishTurn(enc, playerRep, log, r), false
}

func finishTurn(enc *Encounter, playerRep ActorReport, log []string, r *rand.Rand) TurnResult {
	result := TurnResult{Turn: enc.Turn, Player: playerRep}

	for _, en := range enc.Enemies {
		if !en.Alive() {
			continue
		}
		rep := ActorReport{ActorID: en.ID, ActorName: en.Name}
		if IsStunned(en) {
			ConsumeStun(en)
			rep.Action = "stunned"
			log = append(log, fmt.Sprintf("%s is stunned and cannot act", en.Name))
			result.Enemies = append(result.Enemies, rep)
			continue
		}
		profile := AIProfile{Behavior: BehaviorAggressive, Aggressiveness: 1}
		if en.Profile != nil {
			profile = *en.Profile
		}
		snap := Snapshot{
			HPFraction:      en.HPFraction(),
			CurrentHP:       en.HP,
			PredictedDamage: predictDamage(enc.Player, en),
			HasAbilities:    len(en.Abilities) > 0,
		}
		switch Decide(profile, snap, r) {
		case AIFlee:
			en.Fled = true
			rep.Action = "flee"
			log = append(log, fmt.Sprintf("%s turns and flees", en.Name))
		case AIDefend:
			ApplyEffect(en, guardInstance(en.ID, enc.Turn, EnemyGuardDuration))
			rep.Action = "defend"
			log = append(log, fmt.Sprintf("%s raises its guard", en.Name))
		case AIAbility:
			a := en.Abilities[r.Intn(len(en.Abilities))]
			res := CastAbility(en, enc.Player, a, enc.Turn)
			rep.Action = "ability"
			rep.Effects = []EffectResult{res}
			if res.Log != "" {
				log = append(log, res.Log)
			}
		default:
			dmg, crit := rollDamage(en, enc.Player, r)
			applyDamage(enc.Player, dmg)
			rep.Action = "attack"
			rep.TargetID = enc.Player.ID
			rep.Damage = dmg
			rep.Critical = crit
			log = append(log, attackLine(en.Name, enc.Player.Name, dmg, crit))
			rep.Effects = RollAttackEffects(en.Abilities, enc.Player, en.ID, enc.Turn, enc.Player.Defense, crit, r)
			for _, ef := range rep.Effects {
				log = append(log, ef.Log)
			}
		}
		result.Enemies = append(result.Enemies, rep)
	}

	tick := TickEffects(enc.Player)
	result.TickDamage += tick.Damage
	log = append(log, tick.Log...)
	for _, en := range enc.Enemies {
		if en.HP <= 0 || en.Fled {
			continue
		}
		t := TickEffects(en)
		result.TickDamage += t.Damage
		log = append(log, t.Log...)
	}

	kept := enc.Enemies[:0]
	for _, en := range enc.Enemies {
		switch {
		case en.HP <= 0:
			result.DefeatedIDs = append(result.DefeatedIDs, en.ID)
			log = append(log, fmt.Sprintf("%s is defeated", en.Name))
		case en.Fled:
			result.FledEnemyIDs = append(result.FledEnemyIDs, en.ID)
		default:
			kept = append(kept, en)
		}
	}
	enc.Enemies = kept

	switch {
	case enc.Player.HP <= 0:
		result.Outcome = OutcomeDefeat
		log = append(log, fmt.Sprintf("%s has fallen", enc.Player.Name))
	case len(enc.Enemies) == 0:
		result.Outcome = OutcomeVictory
	default:
		result.Outcome = OutcomeOngoing
	}
	result.Log = log
	return result
}

func rollDamage(attacker, defender *Combatant, r *rand.Rand) (int, bool) {
	critChance := EnemyCritChance
	if attacker.Kind == KindPlayer {
		critChance = PlayerCritChance
	}
	crit := r.Float64() < critChance
	modifier := AttackModifier(attacker) * IncomingModifier(defender)
	if crit {
		modifier *= CritMultiplier
	}
	variance := r.Intn(DamageVarianceSpan) - DamageVarianceShift
	dmg := int(math.Floor(float64(attacker.Attack)*modifier)) - int(math.Floor(float64(defender.Defense)*DefenseMitigation)) + variance
	if dmg < MinDamage {
		dmg = MinDamage
	}
	return dmg, crit
}

func applyDamage(c *Combatant, dmg int) {
	c.HP -= dmg
	if c.HP < 0 {
		c.HP = 0
	}
}

// predictDamage is the rough expected player hit this enemy weighs its
// defend decision against. No variance, no crit.
func predictDamage(player, enemy *Combatant) int {
	dmg := int(math.Floor(float64(player.Attack)*AttackModifier(player))) - int(math.Floor(float64(enemy.Defense)*DefenseMitigation))
	if dmg < MinDamage {
		dmg = MinDamage
	}
	return dmg
}

func guardInstance(sourceID string, turn, duration int) StatusEffectInstance {
	return StatusEffectInstance{
		Type:        EffectGuard,
		Remaining:   duration,
		Stacks:      1,
		SourceID:    sourceID,
		AppliedTurn: turn,
	}
}

func attackLine(attacker, target string, dmg int, crit bool) string {
	if crit {
		return fmt.Sprintf("%s critically hits %s for %d damage", attacker, target, dmg)
	}
	return fmt.Sprintf("%s hits %s for %d damage", attacker, target, dmg)
}
