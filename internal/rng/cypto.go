package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// Crypto wraps the crypto/rand library
type Crypto struct{}

// Intn returns a random number from 0 < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Float64 returns a random number in [0.0, 1.0)
func (c Crypto) Float64() float64 {
	return float64(c.Intn(1<<53)) / (1 << 53)
}

// Seed returns a positive seed suitable for a new hand
func (c Crypto) Seed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}

	seed := int64(binary.BigEndian.Uint64(b[:]) >> 1)
	if seed == 0 {
		return 1
	}

	return seed
}
