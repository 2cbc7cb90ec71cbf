package store

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a 24-char lowercase hex identifier (12 random bytes).
func NewID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is unusable.
		panic("store: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// NewShareableLink returns a random lowercase hex short code of the given
// length. Odd lengths are rounded up to the next even length.
func NewShareableLink(length int) string {
	if length < 2 {
		length = 2
	}
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		panic("store: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf)[:length]
}
