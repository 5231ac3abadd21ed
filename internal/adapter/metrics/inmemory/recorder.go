package inmemory

import (
	"sync"

	"gloomhold/internal/app/ports"
)

type Snapshot struct {
	RunsStarted   uint64            `json:"runs_started"`
	RunsEnded     uint64            `json:"runs_ended"`
	TurnsResolved uint64            `json:"turns_resolved"`
	CommandErrors uint64            `json:"command_errors"`
	ByRunStatus   map[string]uint64 `json:"by_run_status"`
}

type Recorder struct {
	mu       sync.Mutex
	started  uint64
	ended    uint64
	turns    uint64
	errors   uint64
	byStatus map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byStatus: map[string]uint64{},
	}
}

func (r *Recorder) RecordRunStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started++
}

func (r *Recorder) RecordRunEnded(status ports.RunStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ended++
	r.byStatus[string(status)]++
}

func (r *Recorder) RecordTurnResolved() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.turns++
}

func (r *Recorder) RecordCommandError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		RunsStarted:   r.started,
		RunsEnded:     r.ended,
		TurnsResolved: r.turns,
		CommandErrors: r.errors,
		ByRunStatus:   make(map[string]uint64, len(r.byStatus)),
	}
	for k, v := range r.byStatus {
		out.ByRunStatus[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
