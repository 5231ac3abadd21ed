package model

import "time"

type Character struct {
	CharacterID string `gorm:"primaryKey"`
	PlayerID    string
	Name        string
	Level       int32
	XP          int64
	MaxHP       int32
	Attack      int32
	Defense     int32
	Speed       int32
	MagicFind   float64
	Equipment   []byte `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Character) TableName() string { return "characters" }

type DungeonRun struct {
	RunID        string `gorm:"primaryKey"`
	PlayerID     string
	CharacterID  string
	Seed         int64
	Status       string
	DepthReached int32
	Gold         int64
	XP           int64
	StartedAt    time.Time
	EndedAt      *time.Time
}

func (DungeonRun) TableName() string { return "dungeon_runs" }

type RunEvent struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	RunID      string
	Seq        int32
	Type       string
	Payload    []byte `gorm:"type:jsonb"`
	OccurredAt time.Time
}

func (RunEvent) TableName() string { return "run_events" }
