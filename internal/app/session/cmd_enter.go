package session

import (
	"gloomhold/internal/domain/combat"
	"gloomhold/internal/domain/dungeon"
	"gloomhold/internal/rng"
)

// handleEnter moves the player into a room. A cleared room replies
// room-clear; an uncleared one composes its encounter from the room's own
// stream, so revisits after a flee face the same foes. Entering a room
// while a path choice is pending commits the player to the current floor.
func (u UseCase) handleEnter(s *Session, req Request) Reply {
	if s.State == StateEncounter {
		return errorReply(ErrInEncounter)
	}
	if err := requireDungeon(s, req); err != nil {
		return errorReply(err)
	}
	if _, ok := s.Floor.RoomByID(req.RoomID); !ok {
		return errorReply(ErrUnknownRoom)
	}

	if s.State == StatePathChoice {
		s.PendingPaths = nil
		s.State = StateActive
	}
	s.RoomID = req.RoomID

	if s.Cleared[req.RoomID] {
		return Reply{Type: ReplyRoomClear, RoomID: req.RoomID}
	}

	encRand := s.provider.Stream(rng.RoomKey(s.RunID, s.Depth, req.RoomID))
	specs := dungeon.GenerateEncounter(encRand, req.RoomID, s.Depth)
	enemies := make([]*combat.Combatant, 0, len(specs))
	views := make([]combat.Combatant, 0, len(specs))
	types := make([]string, 0, len(specs))
	for _, spec := range specs {
		foe := dungeon.Spawn(spec.Definition, spec.InstanceID, s.Level)
		enemies = append(enemies, foe)
		views = append(views, *foe)
		types = append(types, spec.Definition.TypeID)
	}

	s.Encounter = &combat.Encounter{Player: s.Player, Enemies: enemies}
	s.encRand = encRand
	s.State = StateEncounter
	s.appendEvent("encounter_started", map[string]any{
		"room_id": req.RoomID,
		"depth":   s.Depth,
		"enemies": types,
	}, u.now())

	return Reply{Type: ReplyEncounterStarted, RoomID: req.RoomID, Enemies: views}
}
