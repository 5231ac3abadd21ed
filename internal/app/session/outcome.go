package session

import (
	"context"

	"gloomhold/internal/app/ports"
	"gloomhold/internal/domain/combat"
	"gloomhold/internal/domain/dungeon"
	"gloomhold/internal/domain/loot"
	"gloomhold/internal/rng"
)

// settleOutcome routes a resolved turn: defeat ends the run, victory rolls
// loot and clears the room, anything else keeps the encounter going.
func (u UseCase) settleOutcome(ctx context.Context, connID string, s *Session, result combat.TurnResult, ongoing ReplyType) Reply {
	switch result.Outcome {
	case combat.OutcomeDefeat:
		return u.settleDefeat(ctx, connID, s, result)
	case combat.OutcomeVictory:
		return u.settleVictory(s, result)
	default:
		stats := s.stats()
		return Reply{Type: ongoing, Turn: &result, Stats: &stats}
	}
}

func (u UseCase) settleDefeat(ctx context.Context, connID string, s *Session, result combat.TurnResult) Reply {
	s.appendEvent("encounter_lost", map[string]any{
		"room_id": s.RoomID,
		"depth":   s.Depth,
		"turn":    result.Turn,
	}, u.now())
	u.endRun(ctx, s, ports.RunDefeated)
	u.Sessions.Delete(connID)

	stats := s.stats()
	return Reply{Type: ReplyEncounterLost, Turn: &result, Stats: &stats}
}

// settleVictory draws the room's loot from a stream keyed by floor, room
// and closing turn, so the reward replays with the fight that earned it.
func (u UseCase) settleVictory(s *Session, result combat.TurnResult) Reply {
	isBoss := dungeon.IsBossRoom(s.RoomID, s.Depth)
	table := loot.TableStandard
	if isBoss {
		table = loot.TableBoss
	}
	lr := s.provider.Stream(rng.LootKey(s.RunID, s.Depth, s.RoomID, result.Turn))
	drop := loot.GenerateFromTable(lr, table, s.lootContext(isBoss))

	s.Gold += drop.Gold
	s.TotalXP += drop.XP
	newLevel, carried, gained := loot.ApplyXP(s.Level, s.XP, drop.XP)
	s.applyLevelUps(newLevel, carried, gained)

	s.Cleared[s.RoomID] = true
	s.Encounter = nil
	s.encRand = nil
	s.State = StateActive
	s.appendEvent("encounter_won", map[string]any{
		"room_id": s.RoomID,
		"depth":   s.Depth,
		"turn":    result.Turn,
		"gold":    drop.Gold,
		"xp":      drop.XP,
		"items":   len(drop.Items),
		"boss":    isBoss,
	}, u.now())

	stats := s.stats()
	return Reply{
		Type:         ReplyEncounterWon,
		Turn:         &result,
		Reward:       &drop,
		LevelsGained: gained,
		Stats:        &stats,
	}
}
