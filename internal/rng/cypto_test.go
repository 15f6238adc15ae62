package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.True(found[3])
	a.True(found[4])
	a.False(found[5])
}

func TestCrypto_Float64(t *testing.T) {
	c := Crypto{}
	for i := 0; i < 100; i++ {
		f := c.Float64()
		assert.True(t, f >= 0 && f < 1, "%f", f)
	}
}

func TestCrypto_Seed(t *testing.T) {
	c := Crypto{}
	for i := 0; i < 100; i++ {
		assert.Greater(t, c.Seed(), int64(0))
	}
}

func TestSeeded(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}

	var _ Float64Generator = a
	var _ Float64Generator = Crypto{}
}
