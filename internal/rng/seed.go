package rng

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// NewSeed draws a run seed from the OS entropy source. The clock fallback
// only matters when the entropy source is unreadable.
func NewSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
