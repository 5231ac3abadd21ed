package loot

// Context carries everything a loot roll depends on. Pure input, never
// persisted. A zero ZoneRarityBoost reads as no boost.
type Context struct {
	DifficultyMultiplier float64 `json:"difficulty_multiplier"`
	Depth                int     `json:"depth"`
	PlayerLevel          int     `json:"player_level"`
	MagicFind            float64 `json:"magic_find"`
	ZoneRarityBoost      float64 `json:"zone_rarity_boost,omitempty"`
	ZoneType             string  `json:"zone_type,omitempty"`
	IsBoss               bool    `json:"is_boss,omitempty"`
}

func (c Context) rarityBoost() float64 {
	boost := 1 + c.MagicFind/100
	if c.ZoneRarityBoost > 0 {
		boost *= c.ZoneRarityBoost
	}
	return boost
}

func (c Context) difficultyMultiplier() float64 {
	if c.DifficultyMultiplier <= 0 {
		return 1
	}
	return c.DifficultyMultiplier
}
