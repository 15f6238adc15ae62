package deck

import (
	"sort"
)

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if si, sj := SuitRank(h[i].Suit), SuitRank(h[j].Suit); si != sj {
		return si > sj
	}

	return h[i].Rank > h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Sorted returns a sorted copy of the hand, clubs first and high ranks first
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Stable(h2)
	return h2
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	return h.Find(card) != nil
}

// Find returns the held card equal to card, or nil
func (h Hand) Find(card *Card) *Card {
	for _, c := range h {
		if c.Equal(card) {
			return c
		}
	}

	return nil
}

// Remove removes the first card equal to card
// Returns false if the card is not in the hand
func (h *Hand) Remove(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			newHand := make(Hand, 0, len(*h)-1)
			newHand = append(newHand, (*h)[:i]...)
			newHand = append(newHand, (*h)[i+1:]...)
			*h = newHand
			return true
		}
	}

	return false
}

// Points returns the summed point value of the cards
func (h Hand) Points() int {
	total := 0
	for _, c := range h {
		total += c.Points()
	}

	return total
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
// The cards are shared with the original
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// DeepClone returns a clone of the hand with copies of every card
func (h Hand) DeepClone() Hand {
	h2 := make(Hand, len(h))
	for i, c := range h {
		h2[i] = c.Clone()
	}

	return h2
}
