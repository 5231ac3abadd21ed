package session

import "sort"

func (u UseCase) handleStatus(s *Session) Reply {
	cleared := make([]int, 0, len(s.Cleared))
	for id := range s.Cleared {
		cleared = append(cleared, id)
	}
	sort.Ints(cleared)

	view := StatusView{
		State:        s.State,
		DungeonID:    s.RunID,
		Floor:        s.Depth,
		RoomID:       s.RoomID,
		Stats:        s.stats(),
		Effects:      s.Player.Effects,
		ClearedRooms: cleared,
		Zone:         s.Zone,
		PendingPaths: s.PendingPaths,
	}
	if s.State == StateEncounter {
		view.EnemiesAlive = len(s.Encounter.LivingEnemies())
	}
	return Reply{Type: ReplyStatus, DungeonID: s.RunID, Status: &view}
}
