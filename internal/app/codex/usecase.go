package codex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gloomhold/internal/domain/dungeon"
	"gloomhold/internal/domain/loot"
)

var ErrUnknownDocument = errors.New("unknown codex document")

// UseCase serves the static game catalogs as prebuilt JSON documents for
// client prefetch. The tables never change at runtime, so everything is
// marshaled once at construction.
type UseCase struct {
	index []byte
	docs  map[string][]byte
}

func New() (UseCase, error) {
	sources := map[string]any{
		"enemies.json": map[string]any{"enemies": dungeon.AllEnemies()},
		"zones.json": map[string]any{
			"zones":         dungeon.AllZones(),
			"rarity_boosts": dungeon.RarityBoosts,
		},
		"materials.json": map[string]any{"materials": loot.AllMaterials()},
		"uniques.json":   map[string]any{"uniques": loot.AllUniques()},
		"sets.json":      map[string]any{"sets": loot.AllSets()},
		"affixes.json":   map[string]any{"affixes": loot.AllAffixes()},
	}

	docs := make(map[string][]byte, len(sources))
	names := make([]string, 0, len(sources))
	for name, src := range sources {
		b, err := json.Marshal(src)
		if err != nil {
			return UseCase{}, fmt.Errorf("marshal %s: %w", name, err)
		}
		docs[name] = b
		names = append(names, name)
	}
	sort.Strings(names)

	index, err := json.Marshal(map[string]any{"documents": names})
	if err != nil {
		return UseCase{}, fmt.Errorf("marshal index: %w", err)
	}
	return UseCase{index: index, docs: docs}, nil
}

func (u UseCase) Index(_ context.Context) ([]byte, error) {
	return u.index, nil
}

func (u UseCase) File(_ context.Context, name string) ([]byte, error) {
	b, ok := u.docs[name]
	if !ok {
		return nil, ErrUnknownDocument
	}
	return b, nil
}
