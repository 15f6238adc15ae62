package sheepshead

import (
	"deepsheep/pkg/deck"
)

// Trick is a single round of laid cards
// Laid[i] was played by seat (Leader + i) % n
type Trick struct {
	Leader int          `json:"leader"`
	Laid   []*deck.Card `json:"laid"`
}

// IsFinished returns true when every seat has laid a card
func (t *Trick) IsFinished(numPlayers int) bool {
	return len(t.Laid) == numPlayers
}

// NextSeat returns the seat that lays the next card
func (t *Trick) NextSeat(numPlayers int) int {
	return SeatAfter(t.Leader, len(t.Laid), numPlayers)
}

// SeatOf returns the seat that laid card i
func (t *Trick) SeatOf(i, numPlayers int) int {
	return SeatAfter(t.Leader, i, numPlayers)
}

// Points returns the point value of the laid cards
func (t *Trick) Points() int {
	return deck.Hand(t.Laid).Points()
}

// Contains returns true if the card has been laid in this trick
func (t *Trick) Contains(card *deck.Card) bool {
	return deck.Hand(t.Laid).HasCard(card)
}

// trumpOrder ranks trump cards, queens high
var trumpOrder = map[int]int{
	deck.Queen: 8,
	deck.Jack:  7,
	deck.Ace:   6,
	10:         5,
	deck.King:  4,
	9:          3,
	8:          2,
	7:          1,
}

// failOrder ranks cards following a fail suit, a disguised card lowest
var failOrder = map[int]int{
	deck.Ace:         8,
	10:               7,
	deck.King:        6,
	9:                5,
	8:                2,
	7:                1,
	deck.UnknownRank: 0,
}

// beats returns true if challenger beats incumbent on a trick where led was led
func (h *Hand) beats(challenger, incumbent *deck.Card, led deck.Suit) bool {
	ct, it := h.IsTrump(challenger), h.IsTrump(incumbent)
	switch {
	case ct && !it:
		return true
	case !ct && it:
		return false
	case ct && it:
		cr, ir := trumpOrder[challenger.Rank], trumpOrder[incumbent.Rank]
		if cr != ir {
			return cr > ir
		}

		return deck.SuitRank(challenger.Suit) > deck.SuitRank(incumbent.Suit)
	}

	cf, ifollow := h.SuitOf(challenger) == led, h.SuitOf(incumbent) == led
	if !cf {
		return false
	}

	if !ifollow {
		return true
	}

	return failOrder[h.RankOf(challenger)] > failOrder[h.RankOf(incumbent)]
}

// TrickWinner returns the seat that won the trick
func (h *Hand) TrickWinner(t *Trick) (int, error) {
	n := h.rules.NumPlayers
	if !t.IsFinished(n) {
		return -1, ErrTrickNotFinished
	}

	led := h.SuitOf(t.Laid[0])
	winner := 0
	for i := 1; i < len(t.Laid); i++ {
		if h.beats(t.Laid[i], t.Laid[winner], led) {
			winner = i
		}
	}

	return t.SeatOf(winner, n), nil
}

// mustTrickWinner returns the winner of a trick known to be finished
func (h *Hand) mustTrickWinner(t *Trick) int {
	winner, err := h.TrickWinner(t)
	if err != nil {
		panic(err)
	}

	return winner
}
