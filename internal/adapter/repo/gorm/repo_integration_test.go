package gormrepo

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"gloomhold/internal/adapter/repo/gorm/model"
	"gloomhold/internal/app/ports"
	"gloomhold/internal/domain/loot"

	"gorm.io/gorm"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("GLOOMHOLD_DB_DSN")
	if dsn == "" {
		t.Skip("GLOOMHOLD_DB_DSN is required for integration test")
	}
	return dsn
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenPostgres(requireDSN(t))
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := ApplyMigrations(context.Background(), db, "../../../../migrations"); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestCharacterRepo_RoundTripEquipment(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	characterID := "it-character-roundtrip"
	_ = db.Exec("DELETE FROM characters WHERE character_id = ?", characterID).Error

	equipment, _ := json.Marshal([]loot.Item{
		{
			ID:        "itm-1",
			Name:      "Jagged Shortblade",
			Slot:      loot.SlotWeapon,
			Rarity:    loot.RarityRare,
			ItemLevel: 4,
			Bonuses:   []loot.StatBonus{{Stat: loot.StatAttack, Amount: 6}},
		},
	})
	row := model.Character{
		CharacterID: characterID,
		PlayerID:    "it-player",
		Name:        "Maro",
		Level:       5,
		XP:          220,
		MaxHP:       150,
		Attack:      40,
		Defense:     12,
		Speed:       6,
		MagicFind:   25,
		Equipment:   equipment,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed character: %v", err)
	}

	repo := NewCharacterRepo(db)
	got, err := repo.GetByID(ctx, characterID)
	if err != nil {
		t.Fatalf("get character: %v", err)
	}
	if got.Name != "Maro" || got.Level != 5 || got.MaxHP != 150 {
		t.Fatalf("unexpected character: %+v", got)
	}
	if got.MagicFind != 25 {
		t.Fatalf("expected magic find 25, got %v", got.MagicFind)
	}
	if len(got.Equipment) != 1 || got.Equipment[0].ID != "itm-1" {
		t.Fatalf("unexpected equipment: %+v", got.Equipment)
	}
	if got.Equipment[0].TotalBonus(loot.StatAttack) != 6 {
		t.Fatalf("expected attack bonus 6, got %d", got.Equipment[0].TotalBonus(loot.StatAttack))
	}

	if _, err := repo.GetByID(ctx, characterID+"-missing"); err != ports.ErrNotFound {
		t.Fatalf("expected not found for missing character, got %v", err)
	}
}

func TestRunArchiveRepo_Lifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	runID := "it-run-lifecycle"
	_ = db.Exec("DELETE FROM run_events WHERE run_id = ?", runID).Error
	_ = db.Exec("DELETE FROM dungeon_runs WHERE run_id = ?", runID).Error

	repo := NewRunArchiveRepo(db)
	started := time.Unix(1000, 0).UTC()
	record := ports.RunRecord{
		RunID:        runID,
		PlayerID:     "it-player",
		CharacterID:  "it-character",
		Seed:         42,
		Status:       ports.RunStarted,
		DepthReached: 1,
		StartedAt:    started,
	}
	if err := repo.SaveStart(ctx, record); err != nil {
		t.Fatalf("save start: %v", err)
	}
	if err := repo.SaveStart(ctx, record); err != ports.ErrConflict {
		t.Fatalf("expected conflict on duplicate start, got %v", err)
	}

	record.Status = ports.RunCompleted
	record.DepthReached = 10
	record.Gold = 1800
	record.XP = 3200
	record.EndedAt = time.Unix(2000, 0).UTC()
	events := []ports.RunEvent{
		{RunID: runID, Seq: 1, Type: "run_started", Payload: map[string]any{"seed": 42, "depth": 1}, OccurredAt: started},
		{RunID: runID, Seq: 2, Type: "encounter_won", Payload: map[string]any{"depth": 9, "gold": 60, "boss": true}, OccurredAt: time.Unix(1500, 0).UTC()},
		{RunID: runID, Seq: 3, Type: "run_completed", Payload: map[string]any{"depth": 10, "gold": 1800}, OccurredAt: record.EndedAt},
	}
	if err := repo.SaveOutcome(ctx, record, events); err != nil {
		t.Fatalf("save outcome: %v", err)
	}

	list, err := repo.ListEvents(ctx, runID, 0)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 events, got %d", len(list))
	}
	if list[0].Type != "run_started" || list[2].Type != "run_completed" {
		t.Fatalf("unexpected event order: %s .. %s", list[0].Type, list[2].Type)
	}
	if list[1].Payload["boss"] != true {
		t.Fatalf("expected boss payload to survive, got %+v", list[1].Payload)
	}
	if list[2].Payload["gold"] != float64(1800) {
		t.Fatalf("expected gold 1800, got %v", list[2].Payload["gold"])
	}

	two, err := repo.ListEvents(ctx, runID, 2)
	if err != nil {
		t.Fatalf("list limited events: %v", err)
	}
	if len(two) != 2 || two[1].Seq != 2 {
		t.Fatalf("expected first 2 events, got %+v", two)
	}

	// Redelivering the outcome must not duplicate the trail.
	if err := repo.SaveOutcome(ctx, record, events); err != nil {
		t.Fatalf("redeliver outcome: %v", err)
	}
	again, err := repo.ListEvents(ctx, runID, 0)
	if err != nil {
		t.Fatalf("list after redelivery: %v", err)
	}
	if len(again) != 3 {
		t.Fatalf("expected 3 events after redelivery, got %d", len(again))
	}

	var row model.DungeonRun
	if err := db.Where("run_id = ?", runID).First(&row).Error; err != nil {
		t.Fatalf("query run row: %v", err)
	}
	if row.Status != "completed" || row.DepthReached != 10 || row.Gold != 1800 {
		t.Fatalf("unexpected run row: %+v", row)
	}
	if row.EndedAt == nil || !row.EndedAt.Equal(record.EndedAt) {
		t.Fatalf("expected ended_at persisted, got %v", row.EndedAt)
	}

	if _, err := repo.ListEvents(ctx, runID+"-missing", 0); err != ports.ErrNotFound {
		t.Fatalf("expected not found for missing run, got %v", err)
	}
}
