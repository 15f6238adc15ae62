package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("7c,8c,9d"))
	assert.True(t, hand.HasCard(CardFromString("8c")))
	assert.True(t, hand.HasCard(CardFromString("?8c")), "unknown flag is ignored")
	assert.False(t, hand.HasCard(CardFromString("8s")))
}

func TestHand_Remove(t *testing.T) {
	a := assert.New(t)
	hand := Hand(CardsFromString("7c,8c,9d"))
	orig := hand.Clone()

	a.True(hand.Remove(CardFromString("8c")))
	a.Equal("7c,9d", CardsToString(hand))
	a.False(hand.Remove(CardFromString("8c")))
	a.Equal("7c,8c,9d", CardsToString(orig), "original slice is untouched")
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("7c"))
	assert.Equal(t, "14s,7c", CardsToString(h))
}

func TestHand_Points(t *testing.T) {
	assert.Equal(t, 0, Hand{}.Points())
	assert.Equal(t, 30, Hand(CardsFromString("14c,10c,13d,12s,11h,9h,8h,7h")).Points())
}

func TestHand_Sorted(t *testing.T) {
	h := Hand(CardsFromString("7d,14h,9c,12s,14c"))
	assert.Equal(t, "14c,9c,12s,14h,7d", CardsToString(h.Sorted()))
	assert.Equal(t, "7d,14h,9c,12s,14c", CardsToString(h))
}

func TestHand_DeepClone(t *testing.T) {
	h := Hand(CardsFromString("7d,14h"))
	h2 := h.DeepClone()
	h2[0].Unknown = true

	assert.False(t, h[0].Unknown)
	assert.True(t, h2[0].Equal(h[0]))
}
