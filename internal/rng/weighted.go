package rng

import "math/rand"

// PickWeighted draws one item with probability proportional to weight(item).
// Entries whose weight is zero or negative can never win. The boolean is
// false when no entry is drawable.
func PickWeighted[T any](r *rand.Rand, items []T, weight func(T) float64) (T, bool) {
	var zero T
	total := 0.0
	for _, it := range items {
		if w := weight(it); w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return zero, false
	}
	roll := r.Float64() * total
	for _, it := range items {
		w := weight(it)
		if w <= 0 {
			continue
		}
		roll -= w
		if roll < 0 {
			return it, true
		}
	}
	// float accumulation can leave roll a hair above zero; the last drawable
	// entry takes it
	for i := len(items) - 1; i >= 0; i-- {
		if weight(items[i]) > 0 {
			return items[i], true
		}
	}
	return zero, false
}
