// internal/catalog/daily.go
//
// Puzzle of the day: a deterministic date → index mapping, so every
// player with the same catalog and salt lands on the same puzzle.

package catalog

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PuzzleIndex returns a deterministic catalog index for a date using
// HMAC(salt, YYYY-MM-DD) % n, where n is the number of puzzles
// available. Non-positive n yields 0.
func PuzzleIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// First 8 bytes as uint64 for the modulus.
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
