package memory

import (
	"context"

	"gloomhold/internal/app/ports"
)

type RunArchive struct {
	store *Store
}

func NewRunArchive(store *Store) RunArchive {
	return RunArchive{store: store}
}

func (r RunArchive) SaveStart(_ context.Context, record ports.RunRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.runs[record.RunID]; exists {
		return ports.ErrConflict
	}
	r.store.runs[record.RunID] = record
	return nil
}

func (r RunArchive) SaveOutcome(_ context.Context, record ports.RunRecord, events []ports.RunEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.runs[record.RunID] = record
	r.store.events[record.RunID] = append([]ports.RunEvent(nil), events...)
	return nil
}

func (r RunArchive) ListEvents(_ context.Context, runID string, limit int) ([]ports.RunEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	events, ok := r.store.events[runID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	if limit > 0 && limit < len(events) {
		events = events[:limit]
	}
	return append([]ports.RunEvent(nil), events...), nil
}
