package combat

type Kind string

const (
	KindPlayer Kind = "player"
	KindEnemy  Kind = "enemy"
)

type Combatant struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Kind      Kind                   `json:"kind"`
	TypeID    string                 `json:"type_id,omitempty"`
	HP        int                    `json:"hp"`
	MaxHP     int                    `json:"max_hp"`
	Attack    int                    `json:"attack"`
	Defense   int                    `json:"defense"`
	Speed     int                    `json:"speed"`
	Level     int                    `json:"level"`
	Effects   []StatusEffectInstance `json:"effects"`
	Abilities []Ability              `json:"-"`
	Profile   *AIProfile             `json:"-"`
	Fled      bool                   `json:"-"`
}

func (c *Combatant) Alive() bool {
	return c.HP > 0 && !c.Fled
}

func (c *Combatant) HPFraction() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.HP) / float64(c.MaxHP)
}

type PlayerActionType string

const (
	PlayerAttack PlayerActionType = "attack"
	PlayerDefend PlayerActionType = "defend"
)

type PlayerAction struct {
	Type     PlayerActionType `json:"type"`
	TargetID string           `json:"target_id,omitempty"`
}

type Outcome string

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

type ActorReport struct {
	ActorID   string         `json:"actor_id"`
	ActorName string         `json:"actor_name"`
	Action    string         `json:"action"`
	TargetID  string         `json:"target_id,omitempty"`
	Damage    int            `json:"damage"`
	Critical  bool           `json:"critical,omitempty"`
	Effects   []EffectResult `json:"effects,omitempty"`
}

type TurnResult struct {
	Turn         int           `json:"turn"`
	Player       ActorReport   `json:"player"`
	Enemies      []ActorReport `json:"enemies"`
	TickDamage   int           `json:"tick_damage"`
	Log          []string      `json:"log"`
	Outcome      Outcome       `json:"outcome"`
	DefeatedIDs  []string      `json:"defeated,omitempty"`
	FledEnemyIDs []string      `json:"fled,omitempty"`
}
