package session

import (
	"context"

	"gloomhold/internal/domain/combat"
)

func (u UseCase) handleAction(ctx context.Context, connID string, s *Session, req Request) Reply {
	if s.State != StateEncounter {
		return errorReply(ErrNotInEncounter)
	}
	if err := requireDungeon(s, req); err != nil {
		return errorReply(err)
	}

	var kind combat.PlayerActionType
	switch req.Action {
	case string(combat.PlayerAttack):
		kind = combat.PlayerAttack
	case string(combat.PlayerDefend):
		kind = combat.PlayerDefend
	default:
		return errorReply(ErrUnknownAction)
	}

	result, err := combat.ResolveTurn(s.Encounter, combat.PlayerAction{Type: kind, TargetID: req.TargetID}, s.encRand)
	if err != nil {
		return errorReply(err)
	}
	if u.Metrics != nil {
		u.Metrics.RecordTurnResolved()
	}
	s.appendEvent("turn", map[string]any{
		"turn":          result.Turn,
		"action":        req.Action,
		"player_hp":     s.Player.HP,
		"enemies_alive": len(s.Encounter.LivingEnemies()),
		"outcome":       string(result.Outcome),
	}, u.now())

	return u.settleOutcome(ctx, connID, s, result, ReplyTurnResult)
}
