package memory

import (
	"context"

	"gloomhold/internal/app/ports"
)

type CharacterStore struct {
	store *Store
}

func NewCharacterStore(store *Store) CharacterStore {
	return CharacterStore{store: store}
}

func (r CharacterStore) GetByID(_ context.Context, characterID string) (ports.CharacterRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.characters[characterID]
	if !ok {
		return ports.CharacterRecord{}, ports.ErrNotFound
	}
	return record, nil
}
