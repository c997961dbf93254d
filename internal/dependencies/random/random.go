package random

import (
	"crypto/rand"
	"encoding/hex"
)

// Random produces unique identifiers and can be mocked for testing
type Random interface {
	// ID returns a fresh opaque identifier
	ID() string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// ID returns 16 random bytes hex encoded
func (r *CryptoRandom) ID() string {
	b := make([]byte, 16)
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
