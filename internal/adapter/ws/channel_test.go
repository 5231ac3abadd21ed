package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"gloomhold/internal/adapter/repo/memory"
	"gloomhold/internal/app/ports"
	"gloomhold/internal/app/session"
)

func newTestChannel(t *testing.T) *Channel {
	t.Helper()
	store := memory.NewStore()
	store.SeedCharacter(ports.CharacterRecord{
		CharacterID: "chr-1", PlayerID: "p1", Name: "Maro",
		Level: 1, MaxHP: 100, Attack: 20, Defense: 5, Speed: 3,
	})
	game := session.UseCase{
		Characters: memory.NewCharacterStore(store),
		Archive:    memory.NewRunArchive(store),
		Sessions:   session.NewRegistry(),
		Now:        func() time.Time { return time.Unix(1700000000, 0) },
		Log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return NewChannel(game, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestChannel_HandleRawRoundTrip(t *testing.T) {
	ch := newTestChannel(t)
	ctx := context.Background()

	out := ch.handleRaw(ctx, "conn-1", []byte(`{"type":"start","player_id":"p1","character_id":"chr-1","seed":7}`))
	var started map[string]any
	if err := json.Unmarshal(out, &started); err != nil {
		t.Fatalf("unmarshal reply: %v", err)
	}
	if started["type"] != "dungeon-started" {
		t.Fatalf("expected dungeon-started, got %v", started)
	}
	if started["dungeon_id"] == "" || started["map"] == nil {
		t.Fatalf("expected a dungeon id and map, got %v", started)
	}

	out = ch.handleRaw(ctx, "conn-1", []byte(`{"type":"status"}`))
	var status map[string]any
	if err := json.Unmarshal(out, &status); err != nil {
		t.Fatalf("unmarshal reply: %v", err)
	}
	if status["type"] != "status" {
		t.Fatalf("expected a status reply, got %v", status)
	}
}

func TestChannel_HandleRawMalformedFrame(t *testing.T) {
	ch := newTestChannel(t)

	out := ch.handleRaw(context.Background(), "conn-1", []byte(`{"type":`))
	var reply map[string]any
	if err := json.Unmarshal(out, &reply); err != nil {
		t.Fatalf("unmarshal reply: %v", err)
	}
	if reply["type"] != "dungeon-error" || reply["error"] != "malformed message" {
		t.Fatalf("expected a malformed-message error, got %v", reply)
	}
}

func TestChannel_HandleRawWithoutSession(t *testing.T) {
	ch := newTestChannel(t)

	out := ch.handleRaw(context.Background(), "conn-9", []byte(`{"type":"flee"}`))
	var reply map[string]any
	if err := json.Unmarshal(out, &reply); err != nil {
		t.Fatalf("unmarshal reply: %v", err)
	}
	if reply["type"] != "dungeon-error" {
		t.Fatalf("expected a dungeon-error reply, got %v", reply)
	}
}
