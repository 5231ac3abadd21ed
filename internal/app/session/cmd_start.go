package session

import (
	"context"

	"github.com/google/uuid"

	"gloomhold/internal/app/ports"
	"gloomhold/internal/domain/dungeon"
	"gloomhold/internal/rng"
)

// handleStart creates a fresh run. Persisting the run start is fatal to the
// attempt: on failure no session exists and the client sees an error.
// Starting while a run is live abandons the old run first.
func (u UseCase) handleStart(ctx context.Context, connID string, req Request) Reply {
	if req.PlayerID == "" || req.CharacterID == "" {
		return errorReply(ErrInvalidRequest)
	}

	record, err := u.Characters.GetByID(ctx, req.CharacterID)
	if err != nil {
		u.log().Error("character lookup", "character_id", req.CharacterID, "err", err)
		return errorReply(ErrCharacterLookup)
	}

	now := u.now()
	seed := req.Seed
	if seed == 0 {
		seed = u.newSeed()
	}
	runID := uuid.NewString()

	if err := u.Archive.SaveStart(ctx, ports.RunRecord{
		RunID:        runID,
		PlayerID:     req.PlayerID,
		CharacterID:  req.CharacterID,
		Seed:         seed,
		Status:       ports.RunStarted,
		DepthReached: 1,
		StartedAt:    now,
	}); err != nil {
		u.log().Error("persist run start", "run_id", runID, "err", err)
		return errorReply(ErrRunPersistence)
	}

	if old, ok := u.Sessions.Get(connID); ok {
		old.appendEvent("run_abandoned", map[string]any{"reason": "replaced"}, now)
		u.endRun(ctx, old, ports.RunAbandoned)
		u.Sessions.Delete(connID)
	}

	s := newSession(connID, runID, record, req.PlayerID, seed, now)
	floor := dungeon.GenerateFloor(s.provider.Stream(rng.FloorKey(runID, 1)), 1)
	s.enterFloor(floor)
	s.appendEvent("run_started", map[string]any{
		"character_id": req.CharacterID,
		"seed":         seed,
		"rooms":        len(floor.Rooms),
	}, now)
	u.Sessions.Put(s)

	if u.Metrics != nil {
		u.Metrics.RecordRunStarted()
	}
	u.log().Info("run started", "run_id", runID, "character_id", req.CharacterID, "seed", seed)

	stats := s.stats()
	return Reply{
		Type:       ReplyStarted,
		DungeonID:  runID,
		Floor:      s.Depth,
		Difficulty: string(s.difficulty()),
		Map:        floor,
		Stats:      &stats,
	}
}
