package deck

import (
	"errors"
	"math/rand"
)

// ErrEndOfDeck is an error when more cards are drawn than are left
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a sheepshead deck
const Size = 32

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck of cards, seven through ace in every suit.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := LowRank; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle rebuilds the full deck and shuffles it
// The same seed always produces the same order.
func (d *Deck) Shuffle(seed int64) {
	if seed <= 0 {
		panic("seed must be > 0")
	}

	d.buildDeck()
	r := rand.New(rand.NewSource(seed)) // nolint:gosec
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := r.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// DrawN draws n cards
func (d *Deck) DrawN(n int) ([]*Card, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	cards := make([]*Card, n)
	copy(cards, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
