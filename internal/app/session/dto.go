package session

import (
	"gloomhold/internal/domain/combat"
	"gloomhold/internal/domain/dungeon"
	"gloomhold/internal/domain/loot"
)

type CommandType string

const (
	CommandStart   CommandType = "start"
	CommandEnter   CommandType = "enter"
	CommandAction  CommandType = "action"
	CommandFlee    CommandType = "flee"
	CommandAdvance CommandType = "advance"
	CommandChoose  CommandType = "choose"
	CommandAbandon CommandType = "abandon"
	CommandStatus  CommandType = "status"
)

// Request is one inbound channel message. Fields beyond Type are read per
// command; a Seed of 0 on start means the server picks one.
type Request struct {
	Type        CommandType `json:"type"`
	PlayerID    string      `json:"player_id,omitempty"`
	CharacterID string      `json:"character_id,omitempty"`
	DungeonID   string      `json:"dungeon_id,omitempty"`
	RoomID      int         `json:"room_id,omitempty"`
	Action      string      `json:"action,omitempty"`
	TargetID    string      `json:"target_id,omitempty"`
	PathID      string      `json:"path_id,omitempty"`
	Seed        int64       `json:"seed,omitempty"`
}

type ReplyType string

const (
	ReplyStarted          ReplyType = "dungeon-started"
	ReplyEncounterStarted ReplyType = "encounter-started"
	ReplyRoomClear        ReplyType = "room-clear"
	ReplyTurnResult       ReplyType = "turn-result"
	ReplyEncounterWon     ReplyType = "encounter-won"
	ReplyEncounterLost    ReplyType = "encounter-lost"
	ReplyFled             ReplyType = "fled-successfully"
	ReplyFleeFailed       ReplyType = "flee-failed"
	ReplyFloorChanged     ReplyType = "floor-changed"
	ReplyComplete         ReplyType = "dungeon-complete"
	ReplyPathChosen       ReplyType = "path-chosen"
	ReplyAbandoned        ReplyType = "dungeon-abandoned"
	ReplyStatus           ReplyType = "status"
	ReplyError            ReplyType = "dungeon-error"
)

type StatsView struct {
	HP        int     `json:"hp"`
	MaxHP     int     `json:"max_hp"`
	Attack    int     `json:"attack"`
	Defense   int     `json:"defense"`
	Speed     int     `json:"speed"`
	Level     int     `json:"level"`
	XP        int     `json:"xp"`
	Gold      int     `json:"gold"`
	MagicFind float64 `json:"magic_find"`
}

type StatusView struct {
	State        State                         `json:"state"`
	DungeonID    string                        `json:"dungeon_id"`
	Floor        int                           `json:"floor"`
	RoomID       int                           `json:"room_id"`
	Stats        StatsView                     `json:"stats"`
	Effects      []combat.StatusEffectInstance `json:"effects,omitempty"`
	EnemiesAlive int                           `json:"enemies_alive,omitempty"`
	ClearedRooms []int                         `json:"cleared_rooms,omitempty"`
	Zone         *ZoneChoice                   `json:"zone,omitempty"`
	PendingPaths []dungeon.PathOption          `json:"pending_paths,omitempty"`
}

// Reply is the outbound envelope; Type decides which payload fields are set.
type Reply struct {
	Type         ReplyType            `json:"type"`
	DungeonID    string               `json:"dungeon_id,omitempty"`
	Floor        int                  `json:"floor,omitempty"`
	Difficulty   string               `json:"difficulty,omitempty"`
	RoomID       int                  `json:"room_id,omitempty"`
	Map          *dungeon.FloorMap    `json:"map,omitempty"`
	Stats        *StatsView           `json:"stats,omitempty"`
	Enemies      []combat.Combatant   `json:"enemies,omitempty"`
	Turn         *combat.TurnResult   `json:"turn,omitempty"`
	Reward       *loot.Drop           `json:"reward,omitempty"`
	LevelsGained int                  `json:"levels_gained,omitempty"`
	Paths        []dungeon.PathOption `json:"paths,omitempty"`
	Zone         *ZoneChoice          `json:"zone,omitempty"`
	Status       *StatusView          `json:"status,omitempty"`
	Error        string               `json:"error,omitempty"`
}
