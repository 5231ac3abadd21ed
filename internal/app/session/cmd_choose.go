package session

import (
	"gloomhold/internal/domain/dungeon"
	"gloomhold/internal/rng"
)

// handleChoose commits to one of the offered branch paths: the session
// records the zone and its multipliers, and the floor is rebuilt from a
// zone-specific stream so the layout differs from the default descent.
func (u UseCase) handleChoose(s *Session, req Request) Reply {
	if s.State != StatePathChoice {
		return errorReply(ErrNoPathPending)
	}
	if err := requireDungeon(s, req); err != nil {
		return errorReply(err)
	}

	var chosen *dungeon.PathOption
	for i := range s.PendingPaths {
		if s.PendingPaths[i].ID == req.PathID {
			chosen = &s.PendingPaths[i]
			break
		}
	}
	if chosen == nil {
		return errorReply(ErrUnknownPath)
	}

	s.Zone = &ZoneChoice{
		Type:        chosen.ZoneType,
		Difficulty:  chosen.Difficulty,
		RarityBoost: chosen.RarityBoost,
	}
	s.PendingPaths = nil

	floor := dungeon.GenerateFloor(
		s.provider.Stream(rng.ZoneFloorKey(s.RunID, s.Depth, string(chosen.ZoneType))), s.Depth)
	s.enterFloor(floor)
	s.State = StateActive
	s.appendEvent("path_chosen", map[string]any{
		"depth":        s.Depth,
		"zone":         string(chosen.ZoneType),
		"difficulty":   string(chosen.Difficulty),
		"rarity_boost": chosen.RarityBoost,
	}, u.now())

	return Reply{
		Type:       ReplyPathChosen,
		DungeonID:  s.RunID,
		Floor:      s.Depth,
		Difficulty: string(chosen.Difficulty),
		Zone:       s.Zone,
		Map:        floor,
	}
}
