package loot

const (
	DepthRewardGrowth = 1.12

	UniqueBaseChance     = 0.02
	UniqueBossChance     = 0.08
	UniqueMagicFindBonus = 0.0002

	MaterialBaseChance      = 0.5
	ZoneMaterialBonusRoll   = 0.35
	BaseBonusItemChance     = 0.10
	BonusItemChancePerDepth = 0.02
	MaxBonusItemChance      = 0.6

	AffixTierMatchWeight   = 3.0
	AffixRarityMatchWeight = 2.0
	MaxAffixTier           = 5

	ItemLevelJitter = 3

	LevelUpHPBonus      = 10
	LevelUpAttackBonus  = 2
	LevelUpDefenseBonus = 1
)

// Affix cap per rarity index, common through mythic.
var affixCaps = []int{0, 2, 3, 4, 5, 6}
