package dungeon

const (
	MapWidth  = 44
	MapHeight = 26

	MinLeafSize = 8
	MaxLeafSize = 16
	MinRoomSize = 4
	RoomPadding = 1

	MaxEnemiesPerRoom  = 4
	DepthsPerExtraFoe  = 2
	EncounterJitterOdd = 3

	BossRoomInterval  = 5
	BossMinDepth      = 3
	BossEveryRoomFrom = 9

	BossTierOneMaxDepth = 5
	BossTierTwoMaxDepth = 8

	MaxDepth = 10

	BranchMinDepth   = 5
	BranchThreeDepth = 8

	LevelScalePerLevel = 0.1
	LevelScaleFloor    = 0.5
)

var RarityBoosts = []float64{1.3, 1.6, 2.0}
