package replay

import (
	"context"
	"testing"
	"time"

	"gloomhold/internal/app/ports"
)

func TestUseCase_SummarizesRunTrail(t *testing.T) {
	repo := fakeArchive{events: []ports.RunEvent{
		{Seq: 1, Type: "run_started", OccurredAt: time.Unix(1, 0), Payload: map[string]any{"seed": 7, "rooms": 6}},
		{Seq: 2, Type: "encounter_started", OccurredAt: time.Unix(2, 0), Payload: map[string]any{"room_id": 2, "depth": 1}},
		{Seq: 3, Type: "turn", OccurredAt: time.Unix(3, 0), Payload: map[string]any{"turn": 1}},
		{Seq: 4, Type: "turn", OccurredAt: time.Unix(4, 0), Payload: map[string]any{"turn": 2}},
		{Seq: 5, Type: "encounter_won", OccurredAt: time.Unix(5, 0), Payload: map[string]any{"depth": 1, "gold": 12, "xp": 15, "boss": false}},
		{Seq: 6, Type: "floor_advanced", OccurredAt: time.Unix(6, 0), Payload: map[string]any{"depth": 2.0, "rooms": 7.0}},
		{Seq: 7, Type: "path_chosen", OccurredAt: time.Unix(7, 0), Payload: map[string]any{"depth": 2.0, "zone": "gilded_vault"}},
		{Seq: 8, Type: "turn", OccurredAt: time.Unix(8, 0), Payload: map[string]any{"turn": 1}},
		{Seq: 9, Type: "encounter_won", OccurredAt: time.Unix(9, 0), Payload: map[string]any{"depth": 2.0, "gold": 30.0, "xp": 20.0, "boss": true}},
		{Seq: 10, Type: "run_completed", OccurredAt: time.Unix(10, 0), Payload: map[string]any{"depth": 2.0, "gold": 1000.0, "xp": 2000.0}},
	}}

	uc := UseCase{Archive: repo}
	out, err := uc.Execute(context.Background(), Request{RunID: "run-1", Limit: 50})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(out.Events))
	}

	s := out.Summary
	if s.RunID != "run-1" || s.Outcome != "completed" {
		t.Fatalf("unexpected summary head: %+v", s)
	}
	if s.Depth != 2 || s.TurnsFought != 3 || s.RoomsCleared != 2 || s.BossKills != 1 {
		t.Fatalf("unexpected counters: %+v", s)
	}
	if s.Gold != 12+30+1000 || s.XP != 15+20+2000 {
		t.Fatalf("unexpected totals: gold=%d xp=%d", s.Gold, s.XP)
	}
	if len(s.Zones) != 1 || s.Zones[0] != "gilded_vault" {
		t.Fatalf("unexpected zones: %v", s.Zones)
	}
}

func TestUseCase_SummaryOutcomeFollowsFinalEvent(t *testing.T) {
	cases := []struct {
		eventType string
		want      string
	}{
		{"encounter_lost", "defeated"},
		{"run_abandoned", "abandoned"},
		{"turn", "in-progress"},
	}
	for _, tc := range cases {
		repo := fakeArchive{events: []ports.RunEvent{
			{Seq: 1, Type: "run_started", OccurredAt: time.Unix(1, 0)},
			{Seq: 2, Type: tc.eventType, OccurredAt: time.Unix(2, 0), Payload: map[string]any{"depth": 3}},
		}}
		out, err := UseCase{Archive: repo}.Execute(context.Background(), Request{RunID: "run-1"})
		if err != nil {
			t.Fatalf("%s: Execute error: %v", tc.eventType, err)
		}
		if out.Summary.Outcome != tc.want {
			t.Fatalf("%s: expected outcome %q, got %q", tc.eventType, tc.want, out.Summary.Outcome)
		}
		if out.Summary.Depth != 3 {
			t.Fatalf("%s: expected depth folded from payload, got %d", tc.eventType, out.Summary.Depth)
		}
	}
}

func TestUseCase_RejectsBlankRunID(t *testing.T) {
	_, err := UseCase{Archive: fakeArchive{}}.Execute(context.Background(), Request{RunID: "  "})
	if err != ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_FiltersByTimeWindow(t *testing.T) {
	repo := fakeArchive{events: []ports.RunEvent{
		{Seq: 1, Type: "run_started", OccurredAt: time.Unix(10, 0)},
		{Seq: 2, Type: "turn", OccurredAt: time.Unix(20, 0)},
		{Seq: 3, Type: "run_abandoned", OccurredAt: time.Unix(30, 0)},
	}}

	out, err := UseCase{Archive: repo}.Execute(context.Background(), Request{RunID: "run-1", OccurredFrom: 15, OccurredTo: 25})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].Seq != 2 {
		t.Fatalf("expected only the middle event, got %+v", out.Events)
	}
	if out.Summary.Outcome != "in-progress" {
		t.Fatalf("expected the summary folded over the window only, got %q", out.Summary.Outcome)
	}
}

type fakeArchive struct {
	events []ports.RunEvent
}

func (r fakeArchive) SaveStart(_ context.Context, _ ports.RunRecord) error { return nil }

func (r fakeArchive) SaveOutcome(_ context.Context, _ ports.RunRecord, _ []ports.RunEvent) error {
	return nil
}

func (r fakeArchive) ListEvents(_ context.Context, _ string, _ int) ([]ports.RunEvent, error) {
	return r.events, nil
}
