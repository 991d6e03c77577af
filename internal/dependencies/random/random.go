package random

import (
	"crypto/rand"
	"math/big"
)

// Random is the source of character picks. Tests substitute a queued mock.
type Random interface {
	// Intn returns a uniformly random int in [0, n), or 0 when n <= 0
	Intn(n int) int
}

// CryptoRandom draws from crypto/rand. It has no seed, so picks cannot be
// predicted from the date or shared between profiles.
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		return 0
	}
	return int(v.Int64())
}

// Pick returns a uniformly chosen element of items.
// items must not be empty.
func Pick[T any](r Random, items []T) T {
	return items[r.Intn(len(items))]
}
