package codex

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gloomhold/internal/domain/dungeon"
	"gloomhold/internal/domain/loot"
)

func TestNew_BuildsAllDocuments(t *testing.T) {
	uc, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw, err := uc.Index(context.Background())
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	var index struct {
		Documents []string `json:"documents"`
	}
	if err := json.Unmarshal(raw, &index); err != nil {
		t.Fatalf("unmarshal index: %v", err)
	}
	if len(index.Documents) != 6 {
		t.Fatalf("expected 6 documents, got %v", index.Documents)
	}

	for _, name := range index.Documents {
		b, err := uc.File(context.Background(), name)
		if err != nil {
			t.Fatalf("file %s: %v", name, err)
		}
		if !json.Valid(b) {
			t.Fatalf("document %s is not valid json", name)
		}
	}
}

func TestUseCase_DocumentsMirrorCatalogs(t *testing.T) {
	uc, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	raw, _ := uc.File(ctx, "enemies.json")
	var enemies struct {
		Enemies []dungeon.EnemyDefinition `json:"enemies"`
	}
	if err := json.Unmarshal(raw, &enemies); err != nil {
		t.Fatalf("unmarshal enemies: %v", err)
	}
	if len(enemies.Enemies) != len(dungeon.AllEnemies()) {
		t.Fatalf("expected %d enemies, got %d", len(dungeon.AllEnemies()), len(enemies.Enemies))
	}
	if enemies.Enemies[0].TypeID != dungeon.AllEnemies()[0].TypeID {
		t.Fatalf("expected catalog order preserved")
	}

	raw, _ = uc.File(ctx, "affixes.json")
	var affixes struct {
		Affixes []loot.Affix `json:"affixes"`
	}
	if err := json.Unmarshal(raw, &affixes); err != nil {
		t.Fatalf("unmarshal affixes: %v", err)
	}
	if len(affixes.Affixes) != len(loot.AllAffixes()) {
		t.Fatalf("expected %d affixes, got %d", len(loot.AllAffixes()), len(affixes.Affixes))
	}

	raw, _ = uc.File(ctx, "zones.json")
	var zones struct {
		Zones        []string  `json:"zones"`
		RarityBoosts []float64 `json:"rarity_boosts"`
	}
	if err := json.Unmarshal(raw, &zones); err != nil {
		t.Fatalf("unmarshal zones: %v", err)
	}
	if len(zones.Zones) != len(dungeon.AllZones()) || len(zones.RarityBoosts) != len(dungeon.RarityBoosts) {
		t.Fatalf("unexpected zones document: %+v", zones)
	}
}

func TestUseCase_RejectsUnknownDocument(t *testing.T) {
	uc, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := uc.File(context.Background(), "secrets.json"); !errors.Is(err, ErrUnknownDocument) {
		t.Fatalf("expected ErrUnknownDocument, got %v", err)
	}
}
