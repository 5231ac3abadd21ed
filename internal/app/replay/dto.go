package replay

import "gloomhold/internal/app/ports"

type Request struct {
	RunID        string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

// RunSummary is folded from the archived trail rather than read from the
// run record, so the ops surface shows what the events actually support.
type RunSummary struct {
	RunID        string   `json:"run_id"`
	Outcome      string   `json:"outcome"`
	Depth        int      `json:"depth"`
	Gold         int      `json:"gold"`
	XP           int      `json:"xp"`
	TurnsFought  int      `json:"turns_fought"`
	RoomsCleared int      `json:"rooms_cleared"`
	BossKills    int      `json:"boss_kills"`
	FleeEscapes  int      `json:"flee_escapes"`
	Zones        []string `json:"zones,omitempty"`
}

type Response struct {
	Events  []ports.RunEvent `json:"events"`
	Summary RunSummary       `json:"summary"`
}
