// Package rng provides deterministic pseudorandom streams keyed by context
// strings, plus the weighted-selection helper shared by loot, affix and
// branch-path rolls. Streams with the same provider seed and the same key
// always replay the same sequence.
package rng

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// Provider derives independent streams from a base seed and a context key.
type Provider struct {
	base int64
}

func NewProvider(baseSeed int64) *Provider {
	return &Provider{base: baseSeed}
}

// Stream returns a fresh stream for key. Every call restarts the sequence,
// so callers that consume a stream across several draws must hold on to it.
func (p *Provider) Stream(key string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return rand.New(rand.NewSource(p.base ^ int64(h.Sum64())))
}

// Key builders keep the stream namespace in one place. Floor layout,
// encounter composition, branch paths and loot each get their own stream so
// that consuming one never shifts another.

func FloorKey(dungeonID string, depth int) string {
	return fmt.Sprintf("dungeon:%s:floor:%d", dungeonID, depth)
}

func RoomKey(dungeonID string, depth, roomID int) string {
	return fmt.Sprintf("dungeon:%s:floor:%d:room:%d", dungeonID, depth, roomID)
}

func PathsKey(dungeonID string, depth int) string {
	return fmt.Sprintf("dungeon:%s:paths:%d", dungeonID, depth)
}

// ZoneFloorKey separates a branch-path floor from the default floor at the
// same depth, so choosing a zone rebuilds a genuinely different layout.
func ZoneFloorKey(dungeonID string, depth int, zone string) string {
	return fmt.Sprintf("dungeon:%s:floor:%d:zone:%s", dungeonID, depth, zone)
}

func LootKey(dungeonID string, depth, roomID, turn int) string {
	return fmt.Sprintf("dungeon:%s:loot:%d:%d:%d", dungeonID, depth, roomID, turn)
}
