package ports

import (
	"context"
	"time"

	"gloomhold/internal/domain/loot"
)

type RunStatus string

const (
	RunStarted   RunStatus = "started"
	RunCompleted RunStatus = "completed"
	RunAbandoned RunStatus = "abandoned"
	RunDefeated  RunStatus = "defeated"
)

// CharacterRecord is the read-only snapshot the session starts from.
// Equipment feeds stat and set bonuses into the player combatant.
type CharacterRecord struct {
	CharacterID string
	PlayerID    string
	Name        string
	Level       int
	XP          int
	MaxHP       int
	Attack      int
	Defense     int
	Speed       int
	MagicFind   float64
	Equipment   []loot.Item
}

type CharacterStore interface {
	GetByID(ctx context.Context, characterID string) (CharacterRecord, error)
}

type RunRecord struct {
	RunID        string
	PlayerID     string
	CharacterID  string
	Seed         int64
	Status       RunStatus
	DepthReached int
	Gold         int
	XP           int
	StartedAt    time.Time
	EndedAt      time.Time
}

// RunEvent rows also serve the ops replay surface, hence the wire tags.
type RunEvent struct {
	RunID      string         `json:"run_id"`
	Seq        int            `json:"seq"`
	Type       string         `json:"type"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// RunArchive persists run lifecycles. SaveStart must succeed before a
// session exists; SaveOutcome writes the final record and its events
// atomically and is called fire-and-forget.
type RunArchive interface {
	SaveStart(ctx context.Context, record RunRecord) error
	SaveOutcome(ctx context.Context, record RunRecord, events []RunEvent) error
	ListEvents(ctx context.Context, runID string, limit int) ([]RunEvent, error)
}
