package session

import (
	"math/rand"
	"time"

	"gloomhold/internal/app/ports"
	"gloomhold/internal/domain/combat"
	"gloomhold/internal/domain/dungeon"
	"gloomhold/internal/domain/loot"
	"gloomhold/internal/rng"
)

type State string

const (
	StateActive     State = "dungeon-active"
	StateEncounter  State = "in-encounter"
	StatePathChoice State = "path-choice"
)

type ZoneChoice struct {
	Type        dungeon.ZoneType   `json:"zone_type"`
	Difficulty  dungeon.Difficulty `json:"difficulty"`
	RarityBoost float64            `json:"rarity_boost"`
}

// Session is the per-connection run state. It is mutated only by commands
// arriving on its own connection, so it carries no locking of its own.
type Session struct {
	ConnID       string
	RunID        string
	PlayerID     string
	Character    ports.CharacterRecord
	State        State
	Seed         int64
	Depth        int
	RoomID       int
	Level        int
	XP           int
	Gold         int
	TotalXP      int
	MagicFind    float64
	Player       *combat.Combatant
	Floor        *dungeon.FloorMap
	Cleared      map[int]bool
	Encounter    *combat.Encounter
	Zone         *ZoneChoice
	PendingPaths []dungeon.PathOption
	StartedAt    time.Time

	provider *rng.Provider
	encRand  *rand.Rand
	events   []ports.RunEvent
}

func newSession(connID, runID string, record ports.CharacterRecord, playerID string, seed int64, now time.Time) *Session {
	player, magicFind := buildPlayer(record)
	return &Session{
		ConnID:    connID,
		RunID:     runID,
		PlayerID:  playerID,
		Character: record,
		State:     StateActive,
		Seed:      seed,
		Depth:     1,
		Level:     player.Level,
		XP:        record.XP,
		MagicFind: magicFind,
		Player:    player,
		Cleared:   map[int]bool{},
		StartedAt: now,
		provider:  rng.NewProvider(seed),
	}
}

// buildPlayer folds equipment and equipped-set bonuses into the base
// character stats. Magic find is returned separately: it steers loot
// rolls, not combat.
func buildPlayer(record ports.CharacterRecord) (*combat.Combatant, float64) {
	maxHP, attack, defense, speed := record.MaxHP, record.Attack, record.Defense, record.Speed
	magicFind := record.MagicFind
	for _, it := range record.Equipment {
		maxHP += it.TotalBonus(loot.StatMaxHP)
		attack += it.TotalBonus(loot.StatAttack)
		defense += it.TotalBonus(loot.StatDefense)
		speed += it.TotalBonus(loot.StatSpeed)
		magicFind += float64(it.TotalBonus(loot.StatMagicFind))
	}
	for _, b := range loot.SetBonuses(record.Equipment) {
		switch b.Stat {
		case loot.StatMaxHP:
			maxHP += b.Amount
		case loot.StatAttack:
			attack += b.Amount
		case loot.StatDefense:
			defense += b.Amount
		case loot.StatSpeed:
			speed += b.Amount
		case loot.StatMagicFind:
			magicFind += float64(b.Amount)
		}
	}
	level := record.Level
	if level < 1 {
		level = 1
	}
	return &combat.Combatant{
		ID:      record.CharacterID,
		Name:    record.Name,
		Kind:    combat.KindPlayer,
		HP:      maxHP,
		MaxHP:   maxHP,
		Attack:  attack,
		Defense: defense,
		Speed:   speed,
		Level:   level,
	}, magicFind
}

// enterFloor swaps in a freshly generated floor and places the player in
// the first room, which starts cleared.
func (s *Session) enterFloor(floor *dungeon.FloorMap) {
	s.Floor = floor
	s.RoomID = floor.Rooms[0].ID
	s.Cleared = map[int]bool{s.RoomID: true}
	s.Encounter = nil
	s.encRand = nil
}

// lootContext assembles the roll inputs for the current floor. A chosen
// zone overrides the difficulty multiplier and adds its rarity boost for
// as long as the zone floor lasts.
func (s *Session) lootContext(isBoss bool) loot.Context {
	mult := dungeon.DifficultyForDepth(s.Depth).Multiplier()
	ctx := loot.Context{
		Depth:       s.Depth,
		PlayerLevel: s.Level,
		MagicFind:   s.MagicFind,
		IsBoss:      isBoss,
	}
	if s.Zone != nil {
		mult = s.Zone.Difficulty.Multiplier()
		ctx.ZoneRarityBoost = s.Zone.RarityBoost
		ctx.ZoneType = string(s.Zone.Type)
	}
	ctx.DifficultyMultiplier = mult
	return ctx
}

func (s *Session) difficulty() dungeon.Difficulty {
	if s.Zone != nil {
		return s.Zone.Difficulty
	}
	return dungeon.DifficultyForDepth(s.Depth)
}

func (s *Session) appendEvent(eventType string, payload map[string]any, at time.Time) {
	s.events = append(s.events, ports.RunEvent{
		RunID:      s.RunID,
		Seq:        len(s.events) + 1,
		Type:       eventType,
		Payload:    payload,
		OccurredAt: at,
	})
}

// applyLevelUps grants the fixed per-level stat increases and heals the
// player by the gained max hp.
func (s *Session) applyLevelUps(newLevel, carriedXP, gained int) {
	s.Level = newLevel
	s.XP = carriedXP
	if gained <= 0 {
		return
	}
	s.Player.Level = newLevel
	s.Player.MaxHP += gained * loot.LevelUpHPBonus
	s.Player.HP += gained * loot.LevelUpHPBonus
	if s.Player.HP > s.Player.MaxHP {
		s.Player.HP = s.Player.MaxHP
	}
	s.Player.Attack += gained * loot.LevelUpAttackBonus
	s.Player.Defense += gained * loot.LevelUpDefenseBonus
}

func (s *Session) stats() StatsView {
	return StatsView{
		HP:        s.Player.HP,
		MaxHP:     s.Player.MaxHP,
		Attack:    s.Player.Attack,
		Defense:   s.Player.Defense,
		Speed:     s.Player.Speed,
		Level:     s.Level,
		XP:        s.XP,
		Gold:      s.Gold,
		MagicFind: s.MagicFind,
	}
}
