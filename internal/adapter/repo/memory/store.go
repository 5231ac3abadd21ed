package memory

import (
	"sync"

	"gloomhold/internal/app/ports"
)

// Store backs the in-memory adapters used by tests and DSN-less dev runs.
type Store struct {
	mu         sync.RWMutex
	characters map[string]ports.CharacterRecord
	runs       map[string]ports.RunRecord
	events     map[string][]ports.RunEvent
}

func NewStore() *Store {
	return &Store{
		characters: make(map[string]ports.CharacterRecord),
		runs:       make(map[string]ports.RunRecord),
		events:     make(map[string][]ports.RunEvent),
	}
}

func (s *Store) SeedCharacter(record ports.CharacterRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.characters[record.CharacterID] = record
}

// Run returns the archived record for assertions and the ops surface.
func (s *Store) Run(runID string) (ports.RunRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.runs[runID]
	return record, ok
}
