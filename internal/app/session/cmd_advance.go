package session

import (
	"context"

	"gloomhold/internal/app/ports"
	"gloomhold/internal/domain/dungeon"
	"gloomhold/internal/domain/loot"
	"gloomhold/internal/rng"
)

// handleAdvance descends through the cleared exit room. Depth is capped:
// advancing from the final depth pays the completion reward and ends the
// run. A new floor drops any chosen zone and may offer branching paths.
func (u UseCase) handleAdvance(ctx context.Context, connID string, s *Session, req Request) Reply {
	if s.State != StateActive {
		if s.State == StateEncounter {
			return errorReply(ErrInEncounter)
		}
		return errorReply(ErrExitNotReached)
	}
	if err := requireDungeon(s, req); err != nil {
		return errorReply(err)
	}
	if s.RoomID != s.Floor.ExitRoomID || !s.Cleared[s.RoomID] {
		return errorReply(ErrExitNotReached)
	}

	if s.Depth >= dungeon.MaxDepth {
		return u.completeRun(ctx, connID, s)
	}

	s.Depth++
	s.Zone = nil
	floor := dungeon.GenerateFloor(s.provider.Stream(rng.FloorKey(s.RunID, s.Depth)), s.Depth)
	s.enterFloor(floor)

	paths := dungeon.GenerateBranchingPaths(s.provider.Stream(rng.PathsKey(s.RunID, s.Depth)), s.Depth)
	if len(paths) > 0 {
		s.PendingPaths = paths
		s.State = StatePathChoice
	}
	s.appendEvent("floor_advanced", map[string]any{
		"depth": s.Depth,
		"rooms": len(floor.Rooms),
		"paths": len(paths),
	}, u.now())

	return Reply{
		Type:       ReplyFloorChanged,
		DungeonID:  s.RunID,
		Floor:      s.Depth,
		Difficulty: string(s.difficulty()),
		Map:        floor,
		Paths:      paths,
	}
}

func (u UseCase) completeRun(ctx context.Context, connID string, s *Session) Reply {
	lr := s.provider.Stream(rng.LootKey(s.RunID, s.Depth, s.Floor.ExitRoomID, 0))
	drop := loot.GenerateFromTable(lr, loot.TableCompletion, s.lootContext(false))

	s.Gold += drop.Gold
	s.TotalXP += drop.XP
	newLevel, carried, gained := loot.ApplyXP(s.Level, s.XP, drop.XP)
	s.applyLevelUps(newLevel, carried, gained)

	s.appendEvent("run_completed", map[string]any{
		"depth": s.Depth,
		"gold":  drop.Gold,
		"xp":    drop.XP,
	}, u.now())
	u.endRun(ctx, s, ports.RunCompleted)
	u.Sessions.Delete(connID)
	u.log().Info("run completed", "run_id", s.RunID, "gold", s.Gold, "xp", s.TotalXP)

	stats := s.stats()
	return Reply{
		Type:         ReplyComplete,
		DungeonID:    s.RunID,
		Floor:        s.Depth,
		Reward:       &drop,
		LevelsGained: gained,
		Stats:        &stats,
	}
}
