package rng

import (
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Float64Generator is a Generator that can also return a random fraction
type Float64Generator interface {
	Generator

	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
}

// Seeded is a reproducible generator
type Seeded struct {
	*rand.Rand
}

// NewSeeded returns a generator seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{Rand: rand.New(rand.NewSource(seed))} // nolint:gosec
}
