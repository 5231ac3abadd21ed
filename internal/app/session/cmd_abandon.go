package session

import (
	"context"

	"gloomhold/internal/app/ports"
)

func (u UseCase) handleAbandon(ctx context.Context, connID string, s *Session, req Request) Reply {
	if err := requireDungeon(s, req); err != nil {
		return errorReply(err)
	}

	s.appendEvent("run_abandoned", map[string]any{"depth": s.Depth, "reason": "requested"}, u.now())
	u.endRun(ctx, s, ports.RunAbandoned)
	u.Sessions.Delete(connID)
	u.log().Info("run abandoned", "run_id", s.RunID, "depth", s.Depth)

	return Reply{Type: ReplyAbandoned, DungeonID: s.RunID}
}
