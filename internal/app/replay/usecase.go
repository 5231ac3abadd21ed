package replay

import (
	"context"
	"errors"
	"strings"

	"gloomhold/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase reads archived run trails back for the ops surface. It never
// touches live sessions: a run becomes replayable once its outcome is saved.
type UseCase struct {
	Archive ports.RunArchive
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.RunID) == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Archive.ListEvents(ctx, req.RunID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	summary := summarize(events)
	summary.RunID = req.RunID
	return Response{Events: events, Summary: summary}, nil
}

func filterByTimeWindow(events []ports.RunEvent, from, to int64) []ports.RunEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]ports.RunEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// summarize folds the trail in order. Numeric payload fields arrive as int
// from the memory archive and as float64 after a JSON round trip, so every
// read goes through num.
func summarize(events []ports.RunEvent) RunSummary {
	s := RunSummary{Outcome: "in-progress", Depth: 1}
	for _, evt := range events {
		if d := int(num(evt.Payload["depth"])); d > s.Depth {
			s.Depth = d
		}
		switch evt.Type {
		case "turn":
			s.TurnsFought++
		case "fled":
			s.FleeEscapes++
		case "encounter_won":
			s.RoomsCleared++
			s.Gold += int(num(evt.Payload["gold"]))
			s.XP += int(num(evt.Payload["xp"]))
			if boss, _ := evt.Payload["boss"].(bool); boss {
				s.BossKills++
			}
		case "path_chosen":
			if zone, _ := evt.Payload["zone"].(string); zone != "" {
				s.Zones = append(s.Zones, zone)
			}
		case "run_completed":
			s.Outcome = string(ports.RunCompleted)
			s.Gold += int(num(evt.Payload["gold"]))
			s.XP += int(num(evt.Payload["xp"]))
		case "encounter_lost":
			s.Outcome = string(ports.RunDefeated)
		case "run_abandoned":
			s.Outcome = string(ports.RunAbandoned)
		}
	}
	return s
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
