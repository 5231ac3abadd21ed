package dungeon

type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyNormal    Difficulty = "normal"
	DifficultyHard      Difficulty = "hard"
	DifficultyNightmare Difficulty = "nightmare"
)

func DifficultyForDepth(depth int) Difficulty {
	switch {
	case depth <= 3:
		return DifficultyEasy
	case depth <= 6:
		return DifficultyNormal
	case depth <= 9:
		return DifficultyHard
	default:
		return DifficultyNightmare
	}
}

func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 1.0
	case DifficultyNormal:
		return 1.25
	case DifficultyHard:
		return 1.5
	case DifficultyNightmare:
		return 2.0
	default:
		return 1.0
	}
}

// NextTier is used by branching paths: special zones always run one tier
// above the base floor.
func (d Difficulty) NextTier() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyNormal
	case DifficultyNormal:
		return DifficultyHard
	default:
		return DifficultyNightmare
	}
}
