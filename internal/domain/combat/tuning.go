package combat

const (
	PlayerCritChance = 0.12
	EnemyCritChance  = 0.08
	CritMultiplier   = 1.5

	DefenseMitigation   = 0.5
	MinDamage           = 1
	DamageVarianceSpan  = 5
	DamageVarianceShift = 2

	GuardIncomingDelta = -0.4
	GuardDuration      = 1
	EnemyGuardDuration = 2

	DoTStackCap = 5

	FleeSuccessChance = 0.5

	EffectResistPerDefense = 0.005
	CritEffectChanceBonus  = 1.5
	MaxEffectChance        = 0.95

	DefendBias           = 0.3
	DefendHPFraction     = 0.5
	DefendDamageFraction = 0.2

	BossPhaseHealthy  = 0.75
	BossPhaseWounded  = 0.5
	BossPhaseCornered = 0.25
)
