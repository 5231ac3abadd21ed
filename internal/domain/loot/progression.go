package loot

// XPForNextLevel is the XP needed to climb from level to level+1.
func XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 50 * level * (level + 1)
}

// ApplyXP accumulates gained XP, consuming full level thresholds.
// Returns the new level, the XP carried into it, and the levels gained.
func ApplyXP(level, xp, gained int) (int, int, int) {
	if level < 1 {
		level = 1
	}
	if gained > 0 {
		xp += gained
	}
	levels := 0
	for xp >= XPForNextLevel(level) {
		xp -= XPForNextLevel(level)
		level++
		levels++
	}
	return level, xp, levels
}
