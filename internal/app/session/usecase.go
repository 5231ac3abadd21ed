package session

import (
	"context"
	"log/slog"
	"time"

	"gloomhold/internal/app/ports"
	"gloomhold/internal/rng"
)

// UseCase drives every session transition. One connection's commands are
// handled strictly in arrival order by the channel adapter, so handlers
// own their session exclusively for their whole duration.
type UseCase struct {
	Characters ports.CharacterStore
	Archive    ports.RunArchive
	Metrics    ports.SessionMetrics
	Sessions   *Registry
	NewSeed    func() int64
	Now        func() time.Time
	Log        *slog.Logger
}

// Execute resolves one inbound command into exactly one reply. Errors are
// reported as dungeon-error replies and never tear down the connection.
func (u UseCase) Execute(ctx context.Context, connID string, req Request) Reply {
	reply := u.dispatch(ctx, connID, req)
	if reply.Type == ReplyError && u.Metrics != nil {
		u.Metrics.RecordCommandError()
	}
	return reply
}

func (u UseCase) dispatch(ctx context.Context, connID string, req Request) Reply {
	if req.Type == CommandStart {
		return u.handleStart(ctx, connID, req)
	}

	s, ok := u.Sessions.Get(connID)
	if !ok {
		return errorReply(ErrNoSession)
	}

	switch req.Type {
	case CommandEnter:
		return u.handleEnter(s, req)
	case CommandAction:
		return u.handleAction(ctx, connID, s, req)
	case CommandFlee:
		return u.handleFlee(ctx, connID, s)
	case CommandAdvance:
		return u.handleAdvance(ctx, connID, s, req)
	case CommandChoose:
		return u.handleChoose(s, req)
	case CommandAbandon:
		return u.handleAbandon(ctx, connID, s, req)
	case CommandStatus:
		return u.handleStatus(s)
	default:
		return errorReply(ErrUnknownCommand)
	}
}

// Drop discards a connection's session without archiving, for disconnects
// after the run already resolved. A still-live run is archived as abandoned.
func (u UseCase) Drop(ctx context.Context, connID string) {
	s, ok := u.Sessions.Get(connID)
	if !ok {
		return
	}
	s.appendEvent("run_abandoned", map[string]any{"reason": "disconnect"}, u.now())
	u.endRun(ctx, s, ports.RunAbandoned)
	u.Sessions.Delete(connID)
}

// endRun archives the final record and event trail. Persistence failures
// are logged and never roll back the outcome the player already saw.
func (u UseCase) endRun(ctx context.Context, s *Session, status ports.RunStatus) {
	record := ports.RunRecord{
		RunID:        s.RunID,
		PlayerID:     s.PlayerID,
		CharacterID:  s.Character.CharacterID,
		Seed:         s.Seed,
		Status:       status,
		DepthReached: s.Depth,
		Gold:         s.Gold,
		XP:           s.TotalXP,
		StartedAt:    s.StartedAt,
		EndedAt:      u.now(),
	}
	if err := u.Archive.SaveOutcome(ctx, record, s.events); err != nil {
		u.log().Error("archive run outcome",
			"run_id", s.RunID, "status", string(status), "err", err)
	}
	if u.Metrics != nil {
		u.Metrics.RecordRunEnded(status)
	}
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) newSeed() int64 {
	if u.NewSeed != nil {
		return u.NewSeed()
	}
	return rng.NewSeed()
}

func (u UseCase) log() *slog.Logger {
	if u.Log != nil {
		return u.Log
	}
	return slog.Default()
}

func errorReply(err error) Reply {
	return Reply{Type: ReplyError, Error: err.Error()}
}

func requireDungeon(s *Session, req Request) error {
	if req.DungeonID == "" || req.DungeonID != s.RunID {
		return ErrUnknownDungeon
	}
	return nil
}
