package session

import (
	"context"

	"gloomhold/internal/domain/combat"
)

// handleFlee rolls the independent escape check. Success leaves the room
// uncleared, so the same encounter waits on re-entry. Failure burns the
// action and lets the enemies act, which can still end the run.
func (u UseCase) handleFlee(ctx context.Context, connID string, s *Session) Reply {
	if s.State != StateEncounter {
		return errorReply(ErrNotInEncounter)
	}

	result, escaped := combat.ResolveFlee(s.Encounter, s.encRand)
	if escaped {
		s.Encounter = nil
		s.encRand = nil
		s.State = StateActive
		s.appendEvent("fled", map[string]any{"room_id": s.RoomID, "depth": s.Depth}, u.now())
		return Reply{Type: ReplyFled, Turn: &result, RoomID: s.RoomID}
	}

	if u.Metrics != nil {
		u.Metrics.RecordTurnResolved()
	}
	s.appendEvent("flee_failed", map[string]any{
		"room_id":   s.RoomID,
		"turn":      result.Turn,
		"player_hp": s.Player.HP,
	}, u.now())

	return u.settleOutcome(ctx, connID, s, result, ReplyFleeFailed)
}
