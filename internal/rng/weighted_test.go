package rng

import (
	"math/rand"
	"testing"
)

type weightedEntry struct {
	name   string
	weight float64
}

func TestPickWeightedIsDeterministicPerSeed(t *testing.T) {
	items := []weightedEntry{{"a", 1}, {"b", 5}, {"c", 20}}
	first, ok := PickWeighted(rand.New(rand.NewSource(7)), items, func(e weightedEntry) float64 { return e.weight })
	if !ok {
		t.Fatalf("expected a pick")
	}
	second, _ := PickWeighted(rand.New(rand.NewSource(7)), items, func(e weightedEntry) float64 { return e.weight })
	if first.name != second.name {
		t.Fatalf("same seed picked %q then %q", first.name, second.name)
	}
}

func TestPickWeightedSkipsNonPositiveWeights(t *testing.T) {
	items := []weightedEntry{{"dead", 0}, {"neg", -3}, {"live", 1}}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		got, ok := PickWeighted(r, items, func(e weightedEntry) float64 { return e.weight })
		if !ok {
			t.Fatalf("expected a pick on draw %d", i)
		}
		if got.name != "live" {
			t.Fatalf("draw %d picked %q, want the only drawable entry", i, got.name)
		}
	}
}

func TestPickWeightedEmptyAndAllZero(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	if _, ok := PickWeighted(r, nil, func(e weightedEntry) float64 { return e.weight }); ok {
		t.Fatalf("expected no pick from empty slice")
	}
	items := []weightedEntry{{"a", 0}, {"b", 0}}
	if _, ok := PickWeighted(r, items, func(e weightedEntry) float64 { return e.weight }); ok {
		t.Fatalf("expected no pick when every weight is zero")
	}
}

func TestPickWeightedRoughlyTracksWeights(t *testing.T) {
	items := []weightedEntry{{"rare", 1}, {"common", 9}}
	r := rand.New(rand.NewSource(99))
	counts := map[string]int{}
	const draws = 10000
	for i := 0; i < draws; i++ {
		got, _ := PickWeighted(r, items, func(e weightedEntry) float64 { return e.weight })
		counts[got.name]++
	}
	frac := float64(counts["common"]) / draws
	if frac < 0.85 || frac > 0.95 {
		t.Fatalf("common drawn %.3f of the time, want about 0.90", frac)
	}
}
